package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ORIENTATION_TEST_STR", "from-env")
	if got := GetEnv("ORIENTATION_TEST_STR", "fallback", nil); got != "from-env" {
		t.Errorf("GetEnv = %q, want from-env", got)
	}
	if got := GetEnv("ORIENTATION_TEST_STR_MISSING", "fallback", nil); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("ORIENTATION_TEST_INT", "42")
	if got := GetEnvAsInt("ORIENTATION_TEST_INT", 7, nil); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	t.Setenv("ORIENTATION_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("ORIENTATION_TEST_INT", 7, nil); got != 7 {
		t.Errorf("GetEnvAsInt = %d, want default 7", got)
	}
	if got := GetEnvAsInt("ORIENTATION_TEST_INT_MISSING", 7, nil); got != 7 {
		t.Errorf("GetEnvAsInt = %d, want default 7", got)
	}
}
