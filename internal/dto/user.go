package dto

type Usage struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Exhausted bool `json:"exhausted"`
}

type UserStatus struct {
	UserPlan string `json:"user_plan"`
	Usage    Usage  `json:"usage"`
}

// DefaultUserStatus is the fail-open payload when MCP cannot be reached.
func DefaultUserStatus() UserStatus {
	return UserStatus{
		UserPlan: "free",
		Usage:    Usage{Used: 0, Limit: 3, Exhausted: false},
	}
}
