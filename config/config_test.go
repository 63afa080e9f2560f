package config

import (
	"testing"
	"time"
)

func validPlannerConfig() *Config {
	return &Config{
		Planner: PlannerConfig{
			RemovalDelay: 500 * time.Millisecond,
			SessionTTL:   30 * time.Minute,
			MaxSessions:  1000,
			YearRadius:   10,
		},
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"Defaults":             {mutate: func(c *Config) {}},
		"Zero removal delay":   {mutate: func(c *Config) { c.Planner.RemovalDelay = 0 }},
		"Negative delay":       {mutate: func(c *Config) { c.Planner.RemovalDelay = -time.Second }, wantErr: true},
		"Zero session ttl":     {mutate: func(c *Config) { c.Planner.SessionTTL = 0 }, wantErr: true},
		"Zero max sessions":    {mutate: func(c *Config) { c.Planner.MaxSessions = 0 }, wantErr: true},
		"Zero year radius":     {mutate: func(c *Config) { c.Planner.YearRadius = 0 }, wantErr: true},
		"Negative year radius": {mutate: func(c *Config) { c.Planner.YearRadius = -1 }, wantErr: true},
		"Year radius of one":   {mutate: func(c *Config) { c.Planner.YearRadius = 1 }},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validPlannerConfig()
			tc.mutate(cfg)

			err := validate(cfg)
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
