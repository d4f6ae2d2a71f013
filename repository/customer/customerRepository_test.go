package customerrepo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikePrefixEscapesWildcards(t *testing.T) {
	require.Equal(t, "012%", likePrefix("012"))
	require.Equal(t, `0\%1\_2\\%`, likePrefix(`0%1_2\`))
}
