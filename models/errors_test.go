package models

import (
	"errors"
	"testing"
)

func TestRelayError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewRelayError(KindNoResponse, MsgNoResponse, 0, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var re *RelayError
	if !errors.As(error(err), &re) || re.Kind != KindNoResponse {
		t.Errorf("errors.As gave kind %q, want %q", re.Kind, KindNoResponse)
	}
}

func TestRelayError_ToResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         *RelayError
		wantError   string
		wantStatus  int
		wantDetails string
	}{
		{
			name:       "upstream status",
			err:        UpstreamError(404, "Not Found"),
			wantError:  "HTTP 404: Not Found",
			wantStatus: 404,
		},
		{
			name:        "no response",
			err:         NewRelayError(KindNoResponse, MsgNoResponse, 0, errors.New("timeout")),
			wantError:   MsgNoResponse,
			wantDetails: "timeout",
		},
		{
			name:       "missing url",
			err:        NewRelayError(KindInvalidInput, MsgURLRequired, 400, nil),
			wantError:  MsgURLRequired,
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.ToResponse()
			if got.Success {
				t.Error("Success should be false")
			}
			if got.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tt.wantError)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", got.Details, tt.wantDetails)
			}
			if got.Kind != string(tt.err.Kind) {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.err.Kind)
			}
		})
	}
}
