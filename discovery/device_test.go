package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSanitizer(t *testing.T) {
	for _, tt := range []struct {
		name     string
		id       string
		expected string
	}{
		{name: "Empty", id: "", expected: ""},
		{name: "Allowed", id: "abc-XYZ_019", expected: "abc-XYZ_019"},
		{name: "MAC", id: "02:5b:26", expected: "02__5b__26"},
		{name: "Topic Levels And Wildcards", id: "a/b+c#", expected: "a__b__c__"},
		{name: "Punctuation", id: "node,1*", expected: "node__1__"},
		{name: "Non ASCII", id: "temp$é", expected: "temp____"},
		{name: "Spaces", id: "Living Room", expected: "Living__Room"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IDSanitizer.Replace(tt.id))
		})
	}
}
