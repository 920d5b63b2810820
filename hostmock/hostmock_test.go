package hostmock

import (
	"errors"
	"testing"
)

type TestCase struct {
	name       string
	cfg        Config
	namespace  string
	capability string
	function   string
	payload    []byte
	wantErr    error
}

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	tt := []TestCase{
		{
			name: "matching call",
			cfg: Config{
				ExpectedNamespace:  "test",
				ExpectedCapability: "logging",
				ExpectedFunctions:  []string{"Info", "Warn"},
				PayloadValidator: func(_ []byte) error {
					return nil
				},
			},
			namespace:  "test",
			capability: "logging",
			function:   "Warn",
			payload:    []byte("test"),
		},
		{
			name:       "custom failure",
			cfg:        Config{Error: ErrMockError, Fail: true},
			namespace:  "test",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrMockError,
		},
		{
			name:       "default failure",
			cfg:        Config{Fail: true},
			namespace:  "test",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "wildcards",
			cfg:        Config{},
			namespace:  "anything",
			capability: "anything",
			function:   "anything",
		},
		{
			name:       "namespace mismatch",
			cfg:        Config{ExpectedNamespace: "test"},
			namespace:  "other",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name:       "capability mismatch",
			cfg:        Config{ExpectedCapability: "logging"},
			namespace:  "test",
			capability: "kv",
			function:   "Info",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "function mismatch",
			cfg:        Config{ExpectedFunctions: []string{"Info"}},
			namespace:  "test",
			capability: "logging",
			function:   "Fatal",
			wantErr:    ErrUnexpectedFunction,
		},
		{
			name: "payload rejected",
			cfg: Config{
				PayloadValidator: func(p []byte) error {
					if len(p) == 0 {
						return ErrMockError
					}
					return nil
				},
			},
			namespace:  "test",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrMockError,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("Unexpected error creating mock: %v", err)
			}

			_, err = m.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Unexpected error: want %v, got %v", tc.wantErr, err)
			}

			calls := m.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected one recorded call, got %d", len(calls))
			}
			if calls[0].Function != tc.function || string(calls[0].Payload) != string(tc.payload) {
				t.Fatalf("recorded call mismatch: %+v", calls[0])
			}
		})
	}
}
