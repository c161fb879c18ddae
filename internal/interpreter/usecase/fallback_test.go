package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"friday-assistant/internal/intent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      intent.Kind
	}{
		{"remind me to call mom tomorrow at 6pm", intent.KindSetReminder},
		{"spent 450 on groceries", intent.KindLogExpense},
		{"I paid 1,200 rent", intent.KindLogExpense},
		{"Meeting with the design team on Friday", intent.KindAddEvent},
		{"remember that Alex likes green tea", intent.KindSaveMemory},
		{"add task finish the report", intent.KindAddTask},
		{"I need to renew my passport", intent.KindAddTask},
		{"show today", intent.KindShowDaily},
		{"give me my weekly summary", intent.KindShowWeekly},
		{"show me my week", intent.KindShowWeekly},
		{"show my daily summary", intent.KindShowDaily},
		{"add task daily standup", intent.KindAddTask},
		{"remind me about daily meds", intent.KindSetReminder},
		{"weekly team meeting at 3pm", intent.KindAddEvent},
		{"what can you do?", intent.KindHelp},
		{"Hey there", intent.KindGreeting},
		{"this is nice", intent.KindGeneral},
		{"", intent.KindGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got, _ := classify(tt.utterance)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripAddress(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"Hey Friday, remind me to stretch at 6pm", "remind me to stretch at 6pm"},
		{"ok friday add task buy milk", "add task buy milk"},
		{"Okay Friday! what can you do", "what can you do"},
		{"Hey Friday", "Hey Friday"},
		{"meeting on friday", "meeting on friday"},
		{"hey fridays are long", "hey fridays are long"},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, stripAddress(tt.utterance))
		})
	}
}

func TestFirstAmount(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"spent 450 on groceries", 450, true},
		{"paid $12.50 for lunch", 12.5, true},
		{"paid 1,200 rent", 1200, true},
		{"bought coffee", 0, false},
	}
	for _, tt := range tests {
		got, ok := firstAmount(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		utterance string
		kind      intent.Kind
		want      string
	}{
		{"remind me to call mom tomorrow at 6pm", intent.KindSetReminder, "call mom"},
		{"spent 450 on groceries", intent.KindLogExpense, "groceries"},
		{"paid $12.50 for lunch with Sam", intent.KindLogExpense, "lunch with Sam"},
		{"add task finish report by next Monday, high priority", intent.KindAddTask, "finish report"},
		{"Dentist appointment on Friday at 3:30pm", intent.KindAddEvent, "Dentist appointment"},
		{"remember that my locker code is 4521", intent.KindSaveMemory, "my locker code is 4521"},
		{"tomorrow", intent.KindAddTask, "tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTitle(tt.utterance, tt.kind))
		})
	}
}

func TestPriorityHint(t *testing.T) {
	assert.Equal(t, intent.PriorityHigh, *priorityHint("urgent: file taxes"))
	assert.Equal(t, intent.PriorityLow, *priorityHint("tidy desk, low priority"))
	assert.Nil(t, priorityHint("tidy desk"))
}

func TestSynthesizeReply(t *testing.T) {
	amount := 450.0
	assert.Equal(t, `Logged 450.00 for "groceries".`,
		synthesizeReply(intent.KindLogExpense, intent.Fields{Title: "groceries", Amount: &amount}))

	for _, k := range intent.Kinds {
		assert.NotEmpty(t, synthesizeReply(k, intent.Fields{Title: "x"}), k)
	}
}
