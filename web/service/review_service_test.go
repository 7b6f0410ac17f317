package service

import (
	"fmt"
	"sync"
	"testing"

	"bookshop/database"

	"github.com/stretchr/testify/assert"
)

func TestReviewUpsert(t *testing.T) {
	setup()
	defer teardown()

	service := ReviewService{}

	reviews, err := service.Upsert("1", "alice", "a classic")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "a classic"}, reviews)

	// Upserting again with different text replaces, not appends
	reviews, err = service.Upsert("1", "alice", "on second thought")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "on second thought"}, reviews)

	// A second user's review coexists under its own key
	reviews, err = service.Upsert("1", "bob", "ok")
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "on second thought", reviews["alice"])

	// Unknown book
	_, err = service.Upsert("999", "alice", "text")
	assert.True(t, database.IsNotFound(err))
}

func TestReviewDelete(t *testing.T) {
	setup()
	defer teardown()

	service := ReviewService{}

	_, err := service.Upsert("1", "alice", "a classic")
	assert.NoError(t, err)

	// Deleting a review that was never written leaves the rest untouched
	_, err = service.Delete("1", "bob")
	assert.ErrorIs(t, err, ErrReviewNotFound)
	reviews, err := service.Reviews("1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "a classic"}, reviews)

	reviews, err = service.Delete("1", "alice")
	assert.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = service.Delete("999", "alice")
	assert.True(t, database.IsNotFound(err))
}

func TestReviewsRead(t *testing.T) {
	setup()
	defer teardown()

	service := ReviewService{}

	_, err := service.Reviews("1")
	assert.ErrorIs(t, err, ErrNoReviews)

	_, err = service.Reviews("999")
	assert.True(t, database.IsNotFound(err))

	_, err = service.Upsert("1", "alice", "a classic")
	assert.NoError(t, err)

	reviews, err := service.Reviews("1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "a classic"}, reviews)
}

func TestConcurrentUpserts(t *testing.T) {
	setup()
	defer teardown()

	service := ReviewService{}

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			username := fmt.Sprintf("user%d", i)
			_, err := service.Upsert("1", username, "concurrent review")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// No lost updates: every writer's review survives
	reviews, err := service.Reviews("1")
	assert.NoError(t, err)
	assert.Len(t, reviews, writers)
}
