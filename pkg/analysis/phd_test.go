package analysis

import "testing"

func TestPhDYearGroup(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{1988, "~1990"},
		{1990, "~1990"},
		{1991, "1991"},
		{2005, "2005"},
		{2017, "2017"},
		{2018, "2018~"},
		{2020, "2018~"},
	}

	for _, c := range cases {
		if got := PhDYearGroup(c.year); got != c.want {
			t.Errorf("PhDYearGroup(%d) = %q, want %q", c.year, got, c.want)
		}
	}
}
