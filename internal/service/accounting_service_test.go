package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
)

func seedClub(t *testing.T, db *gorm.DB, name string) *model.Club {
	t.Helper()
	club, err := newClubService(t, db).CreateClub(name, "academic", "topic", "123456", "", nil)
	require.NoError(t, err)
	return club
}

func TestAccountingService_AddEntry(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")

	entry, err := svc.AddEntry(club.ID, "2024-03-01", "membership fees", 50000, "Alice", nil)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, club.ID, entry.ClubID)
	assert.Equal(t, int64(50000), entry.Amount)

	// expenses are plain negative amounts
	out, err := svc.AddEntry(club.ID, "2024-03-02", "venue rent", -20000, "Alice", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-20000), out.Amount)
}

func TestAccountingService_AddEntry_Validation(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")

	_, err := svc.AddEntry(club.ID, "", "fees", 100, "", nil)
	requireKind(t, err, pkg.KindInvalid)

	_, err = svc.AddEntry(club.ID, "2024-03-01", "  ", 100, "", nil)
	requireKind(t, err, pkg.KindInvalid)

	_, err = svc.AddEntry(999, "2024-03-01", "fees", 100, "", nil)
	requireKind(t, err, pkg.KindNotFound)
}

func TestAccountingService_ListEntries(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")
	other := seedClub(t, db, "Go Club")

	_, err := svc.AddEntry(club.ID, "2024-03-01", "fees", 50000, "", nil)
	require.NoError(t, err)
	_, err = svc.AddEntry(other.ID, "2024-03-01", "other fees", 100, "", nil)
	require.NoError(t, err)

	got, err := svc.ListEntries(club.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fees", got[0].Description)
}

func TestAccountingService_ExportLedger(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")

	// inserted out of date order on purpose
	_, err := svc.AddEntry(club.ID, "2024-03-01", "fees", 50000, "Alice", nil)
	require.NoError(t, err)
	_, err = svc.AddEntry(club.ID, "2024-01-10", "venue", -20000, "Bob", nil)
	require.NoError(t, err)

	buf, name, err := svc.ExportLedger(club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess Club", name)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(pkg.LedgerSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "manager", "description", "amount"}, rows[0])
	// rows come back in ascending date order
	assert.Equal(t, []string{"2024-01-10", "Bob", "venue", "-20000"}, rows[1])
	assert.Equal(t, []string{"2024-03-01", "Alice", "fees", "50000"}, rows[2])
}

func TestAccountingService_ExportLedger_Empty(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")

	_, _, err := svc.ExportLedger(club.ID)
	requireKind(t, err, pkg.KindNotFound)

	_, _, err = svc.ExportLedger(999)
	requireKind(t, err, pkg.KindNotFound)
}

func TestAccountingService_UpdateEntry_Scoped(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")
	other := seedClub(t, db, "Go Club")

	entry, err := svc.AddEntry(club.ID, "2024-03-01", "fees", 50000, "Alice", nil)
	require.NoError(t, err)

	got, err := svc.UpdateEntry(club.ID, entry.ID, map[string]any{"amount": int64(60000)})
	require.NoError(t, err)
	assert.Equal(t, int64(60000), got.Amount)
	assert.Equal(t, "fees", got.Description)

	// the same id under another club is unreachable
	_, err = svc.UpdateEntry(other.ID, entry.ID, map[string]any{"amount": int64(1)})
	requireKind(t, err, pkg.KindNotFound)
}

func TestAccountingService_DeleteEntry_Scoped(t *testing.T) {
	db := setupDB(t)
	svc := newAccountingService(t, db)
	club := seedClub(t, db, "Chess Club")
	other := seedClub(t, db, "Go Club")

	entry, err := svc.AddEntry(club.ID, "2024-03-01", "fees", 50000, "", nil)
	require.NoError(t, err)

	requireKind(t, svc.DeleteEntry(other.ID, entry.ID), pkg.KindNotFound)

	require.NoError(t, svc.DeleteEntry(club.ID, entry.ID))
	requireKind(t, svc.DeleteEntry(club.ID, entry.ID), pkg.KindNotFound)
}
