package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowlist_IsAuthorized(t *testing.T) {
	list := NewAllowlist([]string{"0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE"})

	t.Run("ExactMatch", func(t *testing.T) {
		assert.True(t, list.IsAuthorized("0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE"))
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.True(t, list.IsAuthorized("0x3C276C70AD0447F5FBBEBC297793BE2A750704AE"))
		assert.True(t, list.IsAuthorized("0x3c276c70ad0447f5fbbebc297793be2a750704ae"))
	})

	t.Run("UnknownWallet", func(t *testing.T) {
		assert.False(t, list.IsAuthorized("0x0000000000000000000000000000000000000001"))
	})

	t.Run("EmptyAddress", func(t *testing.T) {
		assert.False(t, list.IsAuthorized(""))
	})

	t.Run("EmptyEntriesIgnored", func(t *testing.T) {
		empty := NewAllowlist([]string{""})
		assert.False(t, empty.IsAuthorized(""))
	})
}
