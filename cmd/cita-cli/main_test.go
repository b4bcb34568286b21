package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPath(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--config", "/tmp/cita.toml", "scm"}, "/tmp/cita.toml"},
		{[]string{"--config=/tmp/cita.toml", "scm"}, "/tmp/cita.toml"},
		{[]string{"-config", "/tmp/cita.toml"}, "/tmp/cita.toml"},
		{[]string{"-config=/tmp/cita.toml"}, "/tmp/cita.toml"},
		{[]string{"scm", "SysConfig", "getQuotaCheck"}, ""},
		{[]string{"--config"}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, configPath(c.args), "args %v", c.args)
	}
}
