package service

import (
	"hash/fnv"
	"strconv"
)

// The first academy courses were minted before ids were derived; their badge
// token ids stay pinned here.
var legacyTokenIDs = map[uint]int64{
	1: 101,
	2: 102,
	3: 103,
}

const tokenIDRange = 1_000_000

// CourseTokenID derives the badge token id for a course from its database id:
// FNV-1a over the decimal id string, folded into [1, tokenIDRange). Purely
// deterministic so the same course always maps to the same token. Not a
// cryptographic hash; collisions are unlikely but not ruled out — anything
// needing global uniqueness must key off the primary key instead.
func CourseTokenID(courseID uint) int64 {
	if id, ok := legacyTokenIDs[courseID]; ok {
		return id
	}
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatUint(uint64(courseID), 10)))
	return int64(h.Sum64()%(tokenIDRange-1)) + 1
}
