package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoMessage_Message(t *testing.T) {
	tests := []struct {
		name string
		info InfoMessage
		want string
	}{
		{
			name: "swimming",
			info: InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "large values stay fixed point",
			info: InfoMessage{TrainingType: "Running", Duration: 12.5, Distance: 1234567.8912, Speed: 0.0004, Calories: 1e7},
			want: "Тип тренировки: Running; Длительность: 12.500 ч.; Дистанция: 1234567.891 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 10000000.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Message())
		})
	}
}
