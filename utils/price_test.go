package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "dot separator", raw: "19.99", expected: "19.99"},
		{name: "comma separator", raw: "19,99", expected: "19.99"},
		{name: "trailing zero", raw: "19.990", expected: "19.99"},
		{name: "whole number", raw: "25", expected: "25"},
		{name: "surrounding spaces", raw: " 12,50 ", expected: "12.5"},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := ParsePrice(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			expected, _ := decimal.NewFromString(tc.expected)
			assert.True(t, price.Equal(expected), "got %s", price)
		})
	}
}
