package nutrition

import "testing"

func TestMacroRatioAlmonds(t *testing.T) {
	// Per-100g values for almonds: 21.2 g protein, 21.6 g carbs, 49.9 g fat.
	r := MacroRatio(21.2, 21.6, 49.9)

	if r.ProteinPct != 13.7 {
		t.Errorf("expected protein 13.7%%, got %v", r.ProteinPct)
	}
	if r.CarbsPct != 13.9 {
		t.Errorf("expected carbs 13.9%%, got %v", r.CarbsPct)
	}
	if r.FatPct != 72.4 {
		t.Errorf("expected fat 72.4%%, got %v", r.FatPct)
	}
}

func TestMacroRatioZeroTotal(t *testing.T) {
	r := MacroRatio(0, 0, 0)
	if r.ProteinPct != 0 || r.CarbsPct != 0 || r.FatPct != 0 {
		t.Errorf("expected all zero, got %+v", r)
	}
}

func TestMacroRatioSingleMacro(t *testing.T) {
	// Olive oil is pure fat.
	r := MacroRatio(0, 0, 100)
	if r.FatPct != 100 {
		t.Errorf("expected fat 100%%, got %v", r.FatPct)
	}
	if r.ProteinPct != 0 || r.CarbsPct != 0 {
		t.Errorf("expected protein and carbs 0%%, got %+v", r)
	}
}

func TestCalorieDensity(t *testing.T) {
	weight := 100.0
	d := CalorieDensity(579, &weight)
	if d == nil {
		t.Fatal("expected a density, got nil")
	}
	if *d != 5.79 {
		t.Errorf("expected 5.79, got %v", *d)
	}
}

func TestCalorieDensityRounding(t *testing.T) {
	weight := 30.0
	d := CalorieDensity(155, &weight)
	if d == nil {
		t.Fatal("expected a density, got nil")
	}
	if *d != 5.17 {
		t.Errorf("expected 5.17, got %v", *d)
	}
}

func TestCalorieDensityMissingWeight(t *testing.T) {
	if d := CalorieDensity(350, nil); d != nil {
		t.Errorf("expected nil for missing weight, got %v", *d)
	}

	zero := 0.0
	if d := CalorieDensity(350, &zero); d != nil {
		t.Errorf("expected nil for zero weight, got %v", *d)
	}
}
