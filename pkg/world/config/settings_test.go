package config

import "testing"

func TestDefaultSettingsAssemblesEveryComponent(t *testing.T) {
	s := DefaultSettings(2020)

	if s.Sources == nil {
		t.Fatalf("DefaultSettings left Sources nil")
	}
	if s.Biomes == nil {
		t.Fatalf("DefaultSettings left Biomes nil")
	}
	if s.CaveRadius != 8 {
		t.Fatalf("CaveRadius = %d, want 8", s.CaveRadius)
	}
	if len(s.Decorators) == 0 {
		t.Fatalf("DefaultSettings produced no decorators")
	}
	if s.Sky.Opacity == nil {
		t.Fatalf("DefaultSettings left Sky.Opacity nil")
	}
}

func TestDefaultSettingsOddCoefficientsAreDistinct(t *testing.T) {
	s := DefaultSettings(2021)

	coeffs := []int64{s.CaveOddA, s.CaveOddB, s.DecorateOddA, s.DecorateOddB}
	for i := 0; i < len(coeffs); i++ {
		for j := i + 1; j < len(coeffs); j++ {
			if coeffs[i] == coeffs[j] {
				t.Fatalf("odd coefficients %d and %d collided: both %d", i, j, coeffs[i])
			}
		}
	}
}

func TestDefaultSettingsIsDeterministic(t *testing.T) {
	a := DefaultSettings(42)
	b := DefaultSettings(42)

	if a.CaveOddA != b.CaveOddA || a.CaveOddB != b.CaveOddB {
		t.Fatalf("cave odd coefficients diverged across identical seeds")
	}
	if a.DecorateOddA != b.DecorateOddA || a.DecorateOddB != b.DecorateOddB {
		t.Fatalf("decorate odd coefficients diverged across identical seeds")
	}
}
