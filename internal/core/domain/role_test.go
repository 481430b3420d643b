package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Role
		ok   bool
	}{
		{"bare lowercase", "admin", RoleAdmin, true},
		{"bare uppercase", "TEACHER", RoleTeacher, true},
		{"mixed case", "Staff", RoleStaff, true},
		{"prefixed form", "ROLE_PARENT", RoleParent, true},
		{"prefixed lowercase", "role_admin", RoleAdmin, true},
		{"surrounding whitespace", "  parent  ", RoleParent, true},
		{"unknown", "superuser", "", false},
		{"empty", "", "", false},
		{"prefix only", "ROLE_", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseRole(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoleShortName(t *testing.T) {
	if got := RoleAdmin.ShortName(); got != "admin" {
		t.Fatalf("ShortName = %q, want %q", got, "admin")
	}
	if got := RoleParent.ShortName(); got != "parent" {
		t.Fatalf("ShortName = %q, want %q", got, "parent")
	}
}

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []Role{RoleTeacher, RoleStaff}}
	if !u.HasRole(RoleTeacher) {
		t.Fatalf("expected user to have teacher role")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatalf("did not expect admin role")
	}
}
