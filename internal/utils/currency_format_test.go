package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		code     string
		contains string
	}{
		{name: "whole rand", amount: "150", code: "ZAR", contains: "150.00"},
		{name: "cents rounded", amount: "12.345", code: "ZAR", contains: "12.35"},
		{name: "dollars", amount: "7.5", code: "USD", contains: "7.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tt.amount), tt.code)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestFormatMoney_Symbol(t *testing.T) {
	assert.Equal(t, "R150.00", FormatMoney(decimal.NewFromInt(150), "ZAR"))
	assert.Equal(t, "$7.50", FormatMoney(decimal.RequireFromString("7.5"), "USD"))
}

func TestMoneyFormatterFor_DefaultsToRand(t *testing.T) {
	f := MoneyFormatterFor("")
	assert.Contains(t, f(decimal.NewFromInt(20)), "R")
	assert.Contains(t, f(decimal.NewFromInt(20)), "20.00")
}
