package services

import (
	"testing"

	"ims_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func category(name string, parentId *uuid.UUID) tables.Category {
	return tables.Category{
		Id:       uuid.New(),
		Name:     name,
		ParentId: parentId,
	}
}

func names(nodes []*tables.Category) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildCategoryTreeSortsSiblingsByName(t *testing.T) {
	root := category("Electronics", nil)
	tv := category("Televisions", &root.Id)
	audio := category("Audio", &root.Id)
	cables := category("Cables", &root.Id)

	forest := BuildCategoryTree([]tables.Category{root, tv, cables, audio})

	require.Len(t, forest, 1)
	assert.Equal(t, "Electronics", forest[0].Name)
	assert.Equal(t, []string{"Audio", "Cables", "Televisions"}, names(forest[0].Children))
}

func TestBuildCategoryTreeMultipleRoots(t *testing.T) {
	kitchen := category("Kitchen", nil)
	garden := category("Garden", nil)
	pots := category("Pots", &kitchen.Id)

	forest := BuildCategoryTree([]tables.Category{kitchen, garden, pots})

	require.Len(t, forest, 2)
	assert.Equal(t, []string{"Garden", "Kitchen"}, names(forest))
	require.Len(t, forest[1].Children, 1)
	assert.Equal(t, "Pots", forest[1].Children[0].Name)
}

func TestBuildCategoryTreeOrphanBecomesRoot(t *testing.T) {
	// Subtree fetches only include rows below the boundary, so the
	// boundary node's children must root the forest.
	missingParent := uuid.New()
	child := category("Laptops", &missingParent)

	forest := BuildCategoryTree([]tables.Category{child})

	require.Len(t, forest, 1)
	assert.Equal(t, "Laptops", forest[0].Name)
}

func TestFlattenCategoryTreeOrder(t *testing.T) {
	root := category("Electronics", nil)
	audio := category("Audio", &root.Id)
	tv := category("Televisions", &root.Id)
	speakers := category("Speakers", &audio.Id)

	forest := BuildCategoryTree([]tables.Category{root, tv, audio, speakers})
	flat := FlattenCategoryTree(forest)

	assert.Equal(t, []string{"Electronics", "Audio", "Speakers", "Televisions"}, names(flat))
	for _, node := range flat {
		assert.Nil(t, node.Children, "flattened nodes must not keep nested children")
	}
}
