package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_Owns(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		owner     string
		want      bool
	}{
		{name: "same email", principal: "john@x.com", owner: "john@x.com", want: true},
		{name: "different casing", principal: "John@X.COM", owner: "john@x.com", want: true},
		{name: "different email", principal: "jane@x.com", owner: "john@x.com", want: false},
		{name: "empty owner", principal: "john@x.com", owner: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Principal{Email: tt.principal, Role: RoleTalent}
			assert.Equal(t, tt.want, p.Owns(tt.owner))
		})
	}
}
