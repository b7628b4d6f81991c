package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
)

func TestMemberService_AddMember(t *testing.T) {
	db := setupDB(t)
	clubs := newClubService(t, db)
	svc := newMemberService(db)

	club, err := clubs.CreateClub("Chess Club", "academic", "chess", "123456", "", nil)
	require.NoError(t, err)

	m, err := svc.AddMember(club.ID, &model.ClubMember{
		Name:       "Alice",
		Contact:    "alice@example.com",
		Major:      "CS",
		Generation: 3,
	})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, club.ID, m.ClubID)
	// role defaults to member when omitted
	assert.Equal(t, "member", m.Role)

	lead, err := svc.AddMember(club.ID, &model.ClubMember{Name: "Bob", Role: "president"})
	require.NoError(t, err)
	assert.Equal(t, "president", lead.Role)
}

func TestMemberService_AddMember_Validation(t *testing.T) {
	db := setupDB(t)
	clubs := newClubService(t, db)
	svc := newMemberService(db)

	_, err := svc.AddMember(999, &model.ClubMember{Name: "Alice"})
	requireKind(t, err, pkg.KindNotFound)

	club, err := clubs.CreateClub("Chess Club", "academic", "chess", "123456", "", nil)
	require.NoError(t, err)

	_, err = svc.AddMember(club.ID, &model.ClubMember{Name: "  "})
	requireKind(t, err, pkg.KindInvalid)
}

func TestMemberService_ListMembers(t *testing.T) {
	db := setupDB(t)
	clubs := newClubService(t, db)
	svc := newMemberService(db)

	a, err := clubs.CreateClub("Chess Club", "academic", "chess", "123456", "", nil)
	require.NoError(t, err)
	b, err := clubs.CreateClub("Go Club", "academic", "go", "111111", "", nil)
	require.NoError(t, err)

	for _, name := range []string{"Alice", "Bob"} {
		_, err = svc.AddMember(a.ID, &model.ClubMember{Name: name})
		require.NoError(t, err)
	}
	_, err = svc.AddMember(b.ID, &model.ClubMember{Name: "Carol"})
	require.NoError(t, err)

	got, err := svc.ListMembers(a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)

	_, err = svc.ListMembers(999)
	requireKind(t, err, pkg.KindNotFound)
}

func TestMemberService_UpdateMember_Partial(t *testing.T) {
	db := setupDB(t)
	clubs := newClubService(t, db)
	svc := newMemberService(db)

	club, err := clubs.CreateClub("Chess Club", "academic", "chess", "123456", "", nil)
	require.NoError(t, err)
	m, err := svc.AddMember(club.ID, &model.ClubMember{Name: "Alice", Major: "CS", Generation: 3})
	require.NoError(t, err)

	got, err := svc.UpdateMember(m.ID, map[string]any{"role": "treasurer", "memo": "keeps the books"})
	require.NoError(t, err)
	assert.Equal(t, "treasurer", got.Role)
	assert.Equal(t, "keeps the books", got.Memo)
	// untouched fields keep their values
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "CS", got.Major)
	assert.Equal(t, 3, got.Generation)

	_, err = svc.UpdateMember(999, map[string]any{"role": "x"})
	requireKind(t, err, pkg.KindNotFound)
}

func TestMemberService_RemoveMember(t *testing.T) {
	db := setupDB(t)
	clubs := newClubService(t, db)
	svc := newMemberService(db)

	club, err := clubs.CreateClub("Chess Club", "academic", "chess", "123456", "", nil)
	require.NoError(t, err)
	m, err := svc.AddMember(club.ID, &model.ClubMember{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(m.ID))

	got, err := svc.ListMembers(club.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	requireKind(t, svc.RemoveMember(m.ID), pkg.KindNotFound)
}
