package timebase

import "testing"

func TestUpdateTODDetectsMidnightCrossing(t *testing.T) {
	s := NewState(Date{2026, 1, 1})

	s.UpdateTOD(86399, nil)
	crossed := s.UpdateTOD(1, nil)

	if !crossed {
		t.Fatal("expected midnight crossing to be detected")
	}
	if s.MidnightJumps() != 1 {
		t.Errorf("MidnightJumps() = %d, want 1", s.MidnightJumps())
	}

	want := Date{2026, 1, 2}
	if got := s.EffectiveDate(); got != want {
		t.Errorf("EffectiveDate() = %+v, want %+v", got, want)
	}
}

func TestUpdateTODIgnoresOrdinaryBackwardsJump(t *testing.T) {
	s := NewState(Date{2026, 1, 1})

	s.UpdateTOD(40000, nil)
	crossed := s.UpdateTOD(39000, nil) // goes backwards but nowhere near midnight

	if crossed {
		t.Fatal("did not expect a midnight crossing for an ordinary backwards jump")
	}
	if s.MidnightJumps() != 0 {
		t.Errorf("MidnightJumps() = %d, want 0", s.MidnightJumps())
	}
}

func TestFillUpRequiresPriorFullTOD(t *testing.T) {
	s := NewState(Date{2026, 1, 1})
	if _, err := s.FillUp(100); err == nil {
		t.Fatal("expected error calling FillUp before any full TOD observed")
	}
}

func TestFillUpNearestValue(t *testing.T) {
	s := NewState(Date{2026, 1, 1})
	s.UpdateTOD(43200.0, nil) // noon

	full, err := s.FillUp(uint16(43200 * 128 % 65536))
	if err != nil {
		t.Fatal(err)
	}
	if full != 43200.0 {
		t.Errorf("FillUp = %v, want 43200", full)
	}
}

func TestStartStopGate(t *testing.T) {
	g := StartStopGate{HaveStart: true, Start: 100, HaveStop: true, Stop: 200}

	if admit, done := g.Admit(50); admit || done {
		t.Errorf("Admit(50) = (%v,%v), want (false,false)", admit, done)
	}
	if admit, done := g.Admit(100); !admit || done {
		t.Errorf("Admit(100) = (%v,%v), want (true,false) - start is inclusive", admit, done)
	}
	if admit, done := g.Admit(250); admit || !done {
		t.Errorf("Admit(250) = (%v,%v), want (false,true)", admit, done)
	}
}

func TestSACSICPropagation(t *testing.T) {
	s := NewState(Date{2026, 1, 1})
	if _, ok := s.SACSIC(); ok {
		t.Fatal("expected no SAC/SIC before first record")
	}
	s.SetSACSIC(0x10, 0x20)
	got, ok := s.SACSIC()
	if !ok || got.SAC != 0x10 || got.SIC != 0x20 {
		t.Errorf("SACSIC() = %+v,%v, want {0x10,0x20},true", got, ok)
	}
}
