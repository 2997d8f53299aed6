package services

import (
	"testing"

	"ims_server/lib"
	"ims_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subtreeOf builds the closure rows for a node with the given descendants,
// starting with the depth-0 self pair.
func subtreeOf(id uuid.UUID, descendants ...tables.CategoryPath) []tables.CategoryPath {
	return append([]tables.CategoryPath{
		{AncestorId: id, DescendantId: id, Depth: 0},
	}, descendants...)
}

func TestValidateReparentRejectsSelf(t *testing.T) {
	id := uuid.New()

	err := validateReparent(id, subtreeOf(id))
	require.ErrorIs(t, err, lib.ErrInvalidParent)
}

func TestValidateReparentRejectsDescendant(t *testing.T) {
	id := uuid.New()
	child := uuid.New()
	grandchild := uuid.New()
	subtree := subtreeOf(id,
		tables.CategoryPath{AncestorId: id, DescendantId: child, Depth: 1},
		tables.CategoryPath{AncestorId: id, DescendantId: grandchild, Depth: 2},
	)

	assert.ErrorIs(t, validateReparent(child, subtree), lib.ErrInvalidParent)
	assert.ErrorIs(t, validateReparent(grandchild, subtree), lib.ErrInvalidParent)
}

func TestValidateReparentAllowsNodesOutsideSubtree(t *testing.T) {
	id := uuid.New()
	child := uuid.New()
	subtree := subtreeOf(id,
		tables.CategoryPath{AncestorId: id, DescendantId: child, Depth: 1},
	)

	// Siblings and ancestors are fine, only the subtree cycles
	assert.NoError(t, validateReparent(uuid.New(), subtree))
}

func TestDeleteBlockedByChildren(t *testing.T) {
	id := uuid.New()
	subtree := subtreeOf(id,
		tables.CategoryPath{AncestorId: id, DescendantId: uuid.New(), Depth: 1},
	)

	err := deleteBlocked(subtree, false)
	require.ErrorIs(t, err, lib.ErrCategoryProtected)
}

func TestDeleteBlockedByProductReferences(t *testing.T) {
	id := uuid.New()

	err := deleteBlocked(subtreeOf(id), true)
	require.ErrorIs(t, err, lib.ErrCategoryProtected)
}

func TestDeleteAllowedForUnreferencedLeaf(t *testing.T) {
	id := uuid.New()

	assert.NoError(t, deleteBlocked(subtreeOf(id), false))
}
