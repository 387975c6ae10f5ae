package domain

import (
	"errors"
	"math"
	"testing"
)

func TestDeliveryTaskValidate(t *testing.T) {
	tests := []struct {
		name string
		task DeliveryTask
		ok   bool
	}{
		{"valid", DeliveryTask{ID: 1, Deadline: 20, Destination: "B", Bonus: 5}, true},
		{"zero bonus", DeliveryTask{ID: 1, Deadline: 0, Destination: "B"}, true},
		{"empty destination", DeliveryTask{ID: 1, Deadline: 20, Destination: " ", Bonus: 5}, false},
		{"negative deadline", DeliveryTask{ID: 1, Deadline: -1, Destination: "B", Bonus: 5}, false},
		{"NaN deadline", DeliveryTask{ID: 1, Deadline: math.NaN(), Destination: "B", Bonus: 5}, false},
		{"infinite deadline", DeliveryTask{ID: 1, Deadline: math.Inf(1), Destination: "B", Bonus: 5}, false},
		{"negative bonus", DeliveryTask{ID: 1, Deadline: 20, Destination: "B", Bonus: -1}, false},
		{"infinite bonus", DeliveryTask{ID: 1, Deadline: 20, Destination: "B", Bonus: math.Inf(1)}, false},
		{"negative id", DeliveryTask{ID: -3, Deadline: 20, Destination: "B", Bonus: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidTask) {
				t.Fatalf("Validate() = %v, want ErrInvalidTask", err)
			}
		})
	}
}
