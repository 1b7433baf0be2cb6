package cart

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "acoustic-cart", Key(""))
	assert.Equal(t, "acoustic-cart:abc", Key("abc"))
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	_, err := m.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	in := []byte(`{"items":[]}`)
	require.NoError(t, m.Save(ctx, "k", in))
	in[0] = 'x'

	out, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(out))
}

func TestSQLiteStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	st, err := OpenSQLiteStorage(path)
	require.NoError(t, err)

	_, err = st.Load(ctx, Key("a"))
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, st.Save(ctx, Key("a"), []byte(`{"items":[1]}`)))
	require.NoError(t, st.Save(ctx, Key("a"), []byte(`{"items":[2]}`)))
	require.NoError(t, st.Close())

	reopened, err := OpenSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	data, err := reopened.Load(ctx, Key("a"))
	require.NoError(t, err)
	assert.Equal(t, `{"items":[2]}`, string(data))
}

func TestOpenSQLiteStorage_RequiresPath(t *testing.T) {
	_, err := OpenSQLiteStorage(" ")
	assert.Error(t, err)
}

func TestPostgresStorage_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	st := NewPostgresStorage(db)

	mock.ExpectQuery("SELECT data FROM cart_snapshots").WithArgs("acoustic-cart:1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(`{"items":[]}`))
	mock.ExpectQuery("SELECT data FROM cart_snapshots").WithArgs("acoustic-cart:2").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT data FROM cart_snapshots").WithArgs("acoustic-cart:3").
		WillReturnError(errors.New("boom"))

	data, err := st.Load(context.Background(), Key("1"))
	if err != nil || string(data) != `{"items":[]}` {
		t.Fatalf("unexpected load result %q, %v", data, err)
	}
	if _, err := st.Load(context.Background(), Key("2")); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	if _, err := st.Load(context.Background(), Key("3")); err == nil {
		t.Fatalf("expected error to propagate")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStorage_SaveAndSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	st := NewPostgresStorage(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cart_snapshots").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO cart_snapshots").WithArgs("acoustic-cart:1", `{"items":[]}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := st.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := st.Save(context.Background(), Key("1"), []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStorage_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	st := NewRedisStorage(client, 0)

	_, err := st.Load(context.Background(), Key("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
	assert.Error(t, st.Save(context.Background(), Key("x"), []byte("{}")))

	// the service hides the read failure and reports the write failure
	svc := NewService(st)
	assert.True(t, svc.Get(context.Background(), "x").IsEmpty())
	_, err = svc.AddItem(context.Background(), "x", line("1", "60x60cm", "Zwart", "89.95", 1))
	assert.Error(t, err)
}
