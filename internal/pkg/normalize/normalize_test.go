package normalize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vacation", "vacation"},
		{"  Sick   Leave ", "sick leave"},
		{"Licencia Médica", "licencia medica"},
		{"PERMISO SIN GOCE", "permiso sin goce"},
		{"Congé Payé", "conge paye"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Key(tc.in); got != tc.want {
			t.Errorf("Key(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
