package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// 大小写和首尾空格不影响结果
	a := GravatarURL("a@x.com")
	b := GravatarURL("  A@X.COM ")
	assert.Equal(t, a, b)

	assert.Contains(t, a, "https://www.gravatar.com/avatar/")
	assert.Contains(t, a, "s=200")
	assert.Contains(t, a, "r=pg")
	assert.Contains(t, a, "d=mm")

	assert.NotEqual(t, a, GravatarURL("b@x.com"))
}
