package common

import "testing"

// Tests for success.

// TestParseConfigForSuccess tests for success.
func TestParseConfigForSuccess(t *testing.T) {
	_, err := ParseConfig("../../defaults.json")
	if err != nil {
		t.Errorf("Now this should have worked :-)")
	}
}

// Tests for failure.

// TestParseConfigForFailure tests for failure.
func TestParseConfigForFailure(t *testing.T) {
	_, err := ParseConfig("foo.yaml")
	if err == nil {
		t.Errorf("The code did not return an error!")
	}

	_, err = ParseConfig("config.go")
	if err == nil {
		t.Errorf("The code did not return an error!")
	}
}

// Tests for sanity.

// TestParseConfigForSanity tests for sanity.
func TestParseConfigForSanity(t *testing.T) {
	cfg, err := ParseConfig("../../defaults.json")
	if err != nil {
		t.Errorf("Now this should have worked :-)")
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("Board dimensions should be positive.")
	}
	if cfg.Queries.Count <= 0 {
		t.Errorf("Query count should be positive.")
	}
}

func TestCheckListenAddress(t *testing.T) {
	type args struct {
		address string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"tc-1", args{address: "localhost:9401"}, true},
		{"tc-2", args{address: "xjkldaoiu/"}, false},
		{"tc-3", args{address: ":8080"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkListenAddress(tt.args.address); got != tt.want {
				t.Errorf("checkListenAddress() = %v, want %v", got, tt.want)
			}
		})
	}
}
