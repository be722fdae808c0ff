package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "agent", "resident"} {
		if r, ok := ParseRole(s); !ok || string(r) != s {
			t.Errorf("%q should parse", s)
		}
	}
	for _, bad := range []string{"", "Admin", "superuser", "ADMIN"} {
		if _, ok := ParseRole(bad); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role Role
		op   Op
		want bool
	}{
		{RoleAdmin, OpCatalogWrite, true},
		{RoleAdmin, OpOrderFulfill, true},
		{RoleAdmin, OpUserAdmin, true},
		{RoleAdmin, OpOrderCreate, false},

		{RoleAgent, OpCatalogWrite, true},
		{RoleAgent, OpCatalogAll, true},
		{RoleAgent, OpOrderFulfill, true},
		{RoleAgent, OpOrderCreate, false},
		{RoleAgent, OpUserAdmin, false},

		{RoleResident, OpOrderCreate, true},
		{RoleResident, OpDashboardSeen, true},
		{RoleResident, OpCatalogWrite, false},
		{RoleResident, OpCatalogAll, false},
		{RoleResident, OpOrderFulfill, false},
		{RoleResident, OpUserAdmin, false},
	}
	for _, tc := range cases {
		if got := tc.role.Can(tc.op); got != tc.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}

	// unknown roles can do nothing
	if Role("ghost").Can(OpDashboardSeen) {
		t.Error("unknown role should have no capabilities")
	}
}
