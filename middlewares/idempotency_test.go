package middlewares

import (
	"testing"
	"time"

	"landscape-portal-backend/models"
)

func TestReplayable(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		rec  models.IdempotencyKey
		want bool
	}{
		{
			"pending record runs the handler",
			models.IdempotencyKey{Key: "k1", ResponseStatus: 0},
			false,
		},
		{
			"completed record replays without the handler",
			models.IdempotencyKey{
				Key:            "k2",
				ResponseStatus: 201,
				ResponseBody:   []byte(`{"id":1}`),
				CompletedAt:    &now,
			},
			true,
		},
		{
			"status without a stored body still runs the handler",
			models.IdempotencyKey{Key: "k3", ResponseStatus: 201},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := replayable(tc.rec); got != tc.want {
				t.Errorf("replayable = %v, want %v", got, tc.want)
			}
		})
	}
}
