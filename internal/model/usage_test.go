package model

import "testing"

func TestUsageProfile_Validate(t *testing.T) {
	valid := UsageProfile{
		CarCategory:     "SUV",
		AnnualBudget:    "700000",
		DailyUsageHours: 2,
		HoldingYears:    5,
	}

	tests := []struct {
		mutate  func(*UsageProfile)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(*UsageProfile) {}, wantErr: false},
		{name: "budget with whitespace", mutate: func(p *UsageProfile) { p.AnnualBudget = " 700000 " }, wantErr: false},
		{name: "empty category", mutate: func(p *UsageProfile) { p.CarCategory = "  " }, wantErr: true},
		{name: "zero years", mutate: func(p *UsageProfile) { p.HoldingYears = 0 }, wantErr: true},
		{name: "years over max", mutate: func(p *UsageProfile) { p.HoldingYears = 21 }, wantErr: true},
		{name: "zero hours", mutate: func(p *UsageProfile) { p.DailyUsageHours = 0 }, wantErr: true},
		{name: "hours over max", mutate: func(p *UsageProfile) { p.DailyUsageHours = 24 }, wantErr: true},
		{name: "non-numeric budget", mutate: func(p *UsageProfile) { p.AnnualBudget = "abc" }, wantErr: true},
		{name: "negative budget", mutate: func(p *UsageProfile) { p.AnnualBudget = "-100" }, wantErr: true},
		{name: "zero budget", mutate: func(p *UsageProfile) { p.AnnualBudget = "0" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGrade_NameDesc(t *testing.T) {
	g := Grade{ModelName: "Aegis", Name: "GX", Description: "entry trim"}
	if got, want := g.NameDesc(), "Aegis - GX (entry trim)"; got != want {
		t.Errorf("NameDesc() = %q, want %q", got, want)
	}
}

func TestReservationRequest_Validate(t *testing.T) {
	valid := ReservationRequest{
		UserName:   "Taro Tanaka",
		UserEmail:  "taro@example.com",
		UserRegion: "Tokyo",
		GradeID:    1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := valid
	bad.UserEmail = "nope"
	if err := bad.Validate(); err == nil {
		t.Error("email without @ accepted")
	}

	bad = valid
	bad.GradeID = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero grade id accepted")
	}
}
