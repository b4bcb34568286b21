package system

// Fixed addresses of the chain's system contracts.
const (
	SysConfigAddress            = "0xffffffffffffffffffffffffffffffffff020000"
	NodeManagerAddress          = "0xffffffffffffffffffffffffffffffffff020001"
	QuotaManagerAddress         = "0xffffffffffffffffffffffffffffffffff020003"
	PermissionManagementAddress = "0xffffffffffffffffffffffffffffffffff020004"
	AuthorizationAddress        = "0xffffffffffffffffffffffffffffffffff020006"
	RoleManagementAddress       = "0xffffffffffffffffffffffffffffffffff020007"
	GroupAddress                = "0xffffffffffffffffffffffffffffffffff020009"
	GroupManagementAddress      = "0xffffffffffffffffffffffffffffffffff02000a"
	AdminManagementAddress      = "0xffffffffffffffffffffffffffffffffff02000c"
	BatchTxAddress              = "0xffffffffffffffffffffffffffffffffff02000e"
	EmergencyBrakeAddress       = "0xffffffffffffffffffffffffffffffffff02000f"
)
