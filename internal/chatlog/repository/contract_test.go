package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"chatlog_service/internal/chatlog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behavior every ChatLogRepository shares
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) ChatLogRepository) {
	ctx := context.Background()

	t.Run("ids are strictly increasing across users", func(t *testing.T) {
		repo := newRepo(t)

		var last int64
		for i, user := range []string{"alice", "bob", "alice", "carol", "bob"} {
			id, err := repo.Create(ctx, user, domain.ChatMessage{Message: "m" + strconv.Itoa(i)})
			require.NoError(t, err)
			assert.Greater(t, id, last)
			last = id
		}
	})

	t.Run("ids start at one", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "hi"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("list keeps insertion order and honors limit", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < 5; i++ {
			_, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "m" + strconv.Itoa(i), Timestamp: int64(100 + i), IsSent: i%2 == 0})
			require.NoError(t, err)
		}

		msgs, err := repo.List(ctx, "alice", 3)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		for i, m := range msgs {
			assert.Equal(t, "m"+strconv.Itoa(i), m.Message)
			assert.Equal(t, int64(100+i), m.Timestamp)
			assert.Equal(t, i%2 == 0, m.IsSent)
		}

		all, err := repo.List(ctx, "alice", 100)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		none, err := repo.List(ctx, "alice", 0)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("unknown user lists empty", func(t *testing.T) {
		repo := newRepo(t)

		msgs, err := repo.List(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("delete all is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "hi"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, "bob", domain.ChatMessage{Message: "yo"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteAll(ctx, "alice"))
		require.NoError(t, repo.DeleteAll(ctx, "alice"))
		require.NoError(t, repo.DeleteAll(ctx, "never-existed"))

		msgs, err := repo.List(ctx, "alice", 10)
		require.NoError(t, err)
		assert.Empty(t, msgs)

		err = repo.DeleteOne(ctx, "alice", "1")
		assert.True(t, errors.Is(err, domain.ErrUserNotFound))

		others, err := repo.List(ctx, "bob", 10)
		require.NoError(t, err)
		assert.Len(t, others, 1)
	})

	t.Run("ids are not reused after deletion", func(t *testing.T) {
		repo := newRepo(t)
		first, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "a"})
		require.NoError(t, err)
		require.NoError(t, repo.DeleteAll(ctx, "alice"))

		second, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "b"})
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("delete one removes exactly the match", func(t *testing.T) {
		repo := newRepo(t)
		var ids []int64
		for _, text := range []string{"a", "b", "c"} {
			id, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: text})
			require.NoError(t, err)
			ids = append(ids, id)
		}

		require.NoError(t, repo.DeleteOne(ctx, "alice", strconv.FormatInt(ids[1], 10)))

		msgs, err := repo.List(ctx, "alice", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "a", msgs[0].Message)
		assert.Equal(t, "c", msgs[1].Message)

		// the same id twice is a miss
		err = repo.DeleteOne(ctx, "alice", strconv.FormatInt(ids[1], 10))
		assert.True(t, errors.Is(err, domain.ErrMessageNotFound))
		assert.EqualError(t, err, "Message not found with ID: "+strconv.FormatInt(ids[1], 10))
	})

	t.Run("delete one with unknown id leaves the log unchanged", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, "alice", domain.ChatMessage{Message: "a"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, "alice", domain.ChatMessage{Message: "b"})
		require.NoError(t, err)

		for _, msgID := range []string{"999", "abc", "", "01"} {
			err := repo.DeleteOne(ctx, "alice", msgID)
			assert.True(t, errors.Is(err, domain.ErrMessageNotFound), "msgID %q", msgID)
		}

		// repeated misses must not shift which id matches
		msgs, err := repo.List(ctx, "alice", 10)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
		require.NoError(t, repo.DeleteOne(ctx, "alice", "1"))
	})

	t.Run("delete one for unknown user", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.DeleteOne(ctx, "ghost", "1")
		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
		assert.EqualError(t, err, "User not found: ghost")
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		const workers, perWorker = 8, 25

		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = make(map[int64]struct{})
		)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				user := "user" + strconv.Itoa(w%3)
				for i := 0; i < perWorker; i++ {
					id, err := repo.Create(ctx, user, domain.ChatMessage{Message: "x"})
					if !assert.NoError(t, err) {
						return
					}
					mu.Lock()
					ids[id] = struct{}{}
					mu.Unlock()
				}
			}(w)
		}
		wg.Wait()

		assert.Len(t, ids, workers*perWorker)

		total := 0
		for u := 0; u < 3; u++ {
			msgs, err := repo.List(ctx, "user"+strconv.Itoa(u), workers*perWorker)
			require.NoError(t, err)
			total += len(msgs)
		}
		assert.Equal(t, workers*perWorker, total)
	})
}
