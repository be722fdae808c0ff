package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleResident Role = "resident"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleAgent, RoleResident:
		return Role(s), true
	}
	return "", false
}

// Op names a gated operation. Handlers gate on ops, not on role strings.
type Op string

const (
	OpCatalogWrite  Op = "catalog.write"  // create/update/delete products
	OpCatalogAll    Op = "catalog.all"    // read inactive products too
	OpOrderCreate   Op = "order.create"   // checkout
	OpOrderFulfill  Op = "order.fulfill"  // claim/advance/cancel orders
	OpUserAdmin     Op = "user.admin"     // list/create/delete users, edit any field
	OpDashboardSeen Op = "dashboard.seen" // any authenticated dashboard
)

var capabilities = map[Role]map[Op]bool{
	RoleAdmin: {
		OpCatalogWrite:  true,
		OpCatalogAll:    true,
		OpOrderFulfill:  true,
		OpUserAdmin:     true,
		OpDashboardSeen: true,
	},
	RoleAgent: {
		OpCatalogWrite:  true,
		OpCatalogAll:    true,
		OpOrderFulfill:  true,
		OpDashboardSeen: true,
	},
	RoleResident: {
		OpOrderCreate:   true,
		OpDashboardSeen: true,
	},
}

func (r Role) Can(op Op) bool {
	return capabilities[r][op]
}
