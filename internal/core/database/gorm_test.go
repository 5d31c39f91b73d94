package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		user     string
		pass     string
		expected string
	}{
		{
			name:     "native dsn untouched",
			in:       "root:secret@tcp(127.0.0.1:3306)/app?parseTime=true",
			expected: "root:secret@tcp(127.0.0.1:3306)/app?parseTime=true",
		},
		{
			name:     "url form gets defaults",
			in:       "mysql://root:secret@db:3306/app",
			expected: "root:secret@tcp(db:3306)/app?charset=utf8mb4&parseTime=true",
		},
		{
			name:     "jdbc params translated",
			in:       "jdbc:mysql://db:3306/app?useSSL=false&characterEncoding=utf8&useUnicode=true",
			user:     "seed",
			pass:     "pw",
			expected: "seed:pw@tcp(db:3306)/app?charset=utf8&parseTime=true&tls=false",
		},
		{
			name:     "query credentials overridden",
			in:       "mysql://db:3306/app?user=a&password=b",
			user:     "c",
			expected: "c:b@tcp(db:3306)/app?charset=utf8mb4&parseTime=true",
		},
		{
			name:     "empty",
			in:       "  ",
			expected: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/app", maskDSN("root:secret@tcp(db:3306)/app"))
	assert.Equal(t, "root@tcp(db:3306)/app", maskDSN("root@tcp(db:3306)/app"))
	assert.Equal(t, "tcp(db:3306)/app", maskDSN("tcp(db:3306)/app"))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGorm_SQLite(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
