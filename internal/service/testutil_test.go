package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
)

// setupDB opens a throwaway sqlite database with the full schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "club.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, mysql.AutoMigrate(db), "failed to migrate test database")
	return db
}

func newStorage(t *testing.T) *StorageService {
	t.Helper()
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)
	return storage
}

func newClubService(t *testing.T, db *gorm.DB) *ClubService {
	t.Helper()
	return &ClubService{
		repo:    &mysql.ClubRepository{DB: db},
		storage: newStorage(t),
	}
}

func newMemberService(db *gorm.DB) *MemberService {
	return &MemberService{
		repo:     &mysql.ClubMemberRepository{DB: db},
		clubRepo: &mysql.ClubRepository{DB: db},
	}
}

func newAccountingService(t *testing.T, db *gorm.DB) *AccountingService {
	t.Helper()
	return &AccountingService{
		repo:     &mysql.AccountingRepository{DB: db},
		clubRepo: &mysql.ClubRepository{DB: db},
		storage:  newStorage(t),
	}
}

func newOperationLogService(t *testing.T, db *gorm.DB) *OperationLogService {
	t.Helper()
	return &OperationLogService{
		repo:     &mysql.OperationLogRepository{DB: db},
		clubRepo: &mysql.ClubRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
		storage:  newStorage(t),
	}
}

func newUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: db},
		tokens: newFakeTokenStore(),
	}
}

// fakeTokenStore 内存版会话令牌存储
type fakeTokenStore struct {
	tokens map[uint64]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[uint64]string{}}
}

func (f *fakeTokenStore) AddUserToken(usrID uint64, token string) error {
	f.tokens[usrID] = token
	return nil
}

func (f *fakeTokenStore) DeleteUserToken(usrID uint64) error {
	delete(f.tokens, usrID)
	return nil
}

func (f *fakeTokenStore) GetUserToken(usrID uint64) (string, error) {
	tok, ok := f.tokens[usrID]
	if !ok {
		return "", errTokenMissing
	}
	return tok, nil
}

func (f *fakeTokenStore) ExtendUserToken(usrID uint64) error {
	if _, ok := f.tokens[usrID]; !ok {
		return errTokenMissing
	}
	return nil
}

var errTokenMissing = errors.New("token not found")

// requireKind asserts that err is an AppError of the given kind.
func requireKind(t *testing.T, err error, kind pkg.ErrKind) {
	t.Helper()
	var ae *pkg.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, kind, ae.Kind)
}

// makeFileHeader builds a real multipart.FileHeader without an HTTP request.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}
