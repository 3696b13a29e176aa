package ante_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/app/ante"
)

func TestValidateBlockTime(t *testing.T) {
	t.Parallel()

	now := time.Now()
	prevTime := now.Add(-10 * time.Second)

	tests := []struct {
		name          string
		blockTime     time.Time
		prevBlockTime time.Time
		currentTime   time.Time
		expectError   bool
		errorContains string
	}{
		{
			name:          "valid block time",
			blockTime:     now,
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   false,
		},
		{
			name:          "block time too far in future",
			blockTime:     now.Add(2 * time.Minute),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   true,
			errorContains: "too far in the future",
		},
		{
			name:          "block time too far in past",
			blockTime:     now.Add(-10 * time.Minute),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   true,
			errorContains: "before previous block time",
		},
		{
			name:          "block time before previous block",
			blockTime:     prevTime.Add(-1 * time.Second),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   true,
			errorContains: "before previous block time",
		},
		{
			name:          "block time equals previous block",
			blockTime:     prevTime,
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   false,
		},
		{
			name:          "first block - no previous time",
			blockTime:     now,
			prevBlockTime: time.Time{},
			currentTime:   now,
			expectError:   false,
		},
		{
			name:          "block time slightly in future - within drift",
			blockTime:     now.Add(15 * time.Second),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   false,
		},
		{
			name:          "block time at exact future limit",
			blockTime:     now.Add(ante.MaxFutureBlockTime),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   false,
		},
		{
			name:          "block time just past future limit",
			blockTime:     now.Add(ante.MaxFutureBlockTime).Add(1 * time.Second),
			prevBlockTime: prevTime,
			currentTime:   now,
			expectError:   true,
			errorContains: "too far in the future",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ante.ValidateBlockTime(tc.blockTime, tc.prevBlockTime, tc.currentTime)

			if tc.expectError {
				require.Error(t, err, "expected error for test case: %s", tc.name)
				if tc.errorContains != "" {
					require.Contains(t, err.Error(), tc.errorContains)
				}
			} else {
				require.NoError(t, err, "unexpected error for test case: %s", tc.name)
			}
		})
	}
}

func TestIsTimeManipulation(t *testing.T) {
	t.Parallel()

	baseTime := time.Now()
	threshold := 1 * time.Minute

	tests := []struct {
		name       string
		blockTimes []time.Time
		threshold  time.Duration
		expected   bool
	}{
		{
			name: "normal progression",
			blockTimes: []time.Time{
				baseTime,
				baseTime.Add(5 * time.Second),
				baseTime.Add(10 * time.Second),
				baseTime.Add(15 * time.Second),
			},
			threshold: threshold,
			expected:  false,
		},
		{
			name: "sudden jump - manipulation detected",
			blockTimes: []time.Time{
				baseTime,
				baseTime.Add(5 * time.Second),
				baseTime.Add(10 * time.Minute), // Sudden jump
				baseTime.Add(10*time.Minute + 5*time.Second),
			},
			threshold: threshold,
			expected:  true,
		},
		{
			name: "time goes backwards - manipulation detected",
			blockTimes: []time.Time{
				baseTime,
				baseTime.Add(10 * time.Second),
				baseTime.Add(5 * time.Second), // Backwards
				baseTime.Add(15 * time.Second),
			},
			threshold: threshold,
			expected:  true,
		},
		{
			name: "single block time",
			blockTimes: []time.Time{
				baseTime,
			},
			threshold: threshold,
			expected:  false,
		},
		{
			name:       "empty block times",
			blockTimes: []time.Time{},
			threshold:  threshold,
			expected:   false,
		},
		{
			name: "exact threshold - not manipulation",
			blockTimes: []time.Time{
				baseTime,
				baseTime.Add(threshold),
			},
			threshold: threshold,
			expected:  false,
		},
		{
			name: "just over threshold - manipulation",
			blockTimes: []time.Time{
				baseTime,
				baseTime.Add(threshold).Add(1 * time.Second),
			},
			threshold: threshold,
			expected:  true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := ante.IsTimeManipulation(tc.blockTimes, tc.threshold)
			require.Equal(t, tc.expected, result, "unexpected result for test case: %s", tc.name)
		})
	}
}

func TestTimeValidatorDecorator_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		scenario    string
	}{
		{
			name:        "network partition recovery",
			description: "Node rejoining after network partition",
			scenario:    "Block times may have drifted but should recover gracefully",
		},
		{
			name:        "clock skew between validators",
			description: "Validators with slightly different system clocks",
			scenario:    "Should tolerate reasonable clock skew (MaxBlockTimeDrift)",
		},
		{
			name:        "rapid block production",
			description: "High-performance chains with sub-second blocks",
			scenario:    "Should allow fast block times (MinBlockTimeDrift = 0)",
		},
		{
			name:        "genesis block",
			description: "First block after chain start",
			scenario:    "Should skip validation for block height <= 1",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// These are documented edge cases that the decorator handles
			// The actual functionality is tested via ValidateBlockTime
			t.Logf("Edge case: %s - %s", tc.description, tc.scenario)
		})
	}
}

func TestTimeValidatorConstants(t *testing.T) {
	t.Parallel()

	// Verify constants are set to secure values
	require.Equal(t, 5*time.Minute, ante.MaxBlockTimeDrift, "MaxBlockTimeDrift should be 5 minutes")
	require.Equal(t, 0*time.Second, ante.MinBlockTimeDrift, "MinBlockTimeDrift should be 0 for flexibility")
	require.Equal(t, 30*time.Second, ante.MaxFutureBlockTime, "MaxFutureBlockTime should be 30 seconds")

	// Document security rationale
	t.Log("MaxBlockTimeDrift (5 min): Allows for network latency and clock skew")
	t.Log("MinBlockTimeDrift (0 sec): Allows instant blocks for testing, production should tune")
	t.Log("MaxFutureBlockTime (30 sec): Prevents timestamp manipulation attacks")
}
