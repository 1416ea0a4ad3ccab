package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"discovery": map[string]any{
			"radius": map[string]any{
				"maxKm": 100,
			},
			"session": map[string]any{
				"saltPerSession": true,
			},
			"prefilterMultiplier": 1.05,
		},
		"queryGuard": map[string]any{
			"maxDistinctCenters": 20,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISCOVERY_RADIUS_MAXKM", want: "discovery.radius.maxKm"},
		{envKey: "DISCOVERY_SESSION_SALTPERSESSION", want: "discovery.session.saltPerSession"},
		{envKey: "DISCOVERY_PREFILTERMULTIPLIER", want: "discovery.prefilterMultiplier"},
		{envKey: "QUERYGUARD_MAXDISTINCTCENTERS", want: "queryGuard.maxDistinctCenters"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
