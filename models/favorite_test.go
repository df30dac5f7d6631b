package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func TestFavoriteBeforeCreateRequiresExactlyOneTarget(t *testing.T) {
	cases := []struct {
		name    string
		fav     Favorite
		wantErr bool
	}{
		{"none set", Favorite{}, true},
		{"person only", Favorite{PeopleID: uintPtr(1)}, false},
		{"vehicle only", Favorite{VehiclesID: uintPtr(2)}, false},
		{"planet only", Favorite{PlanetsID: uintPtr(3)}, false},
		{"two set", Favorite{PeopleID: uintPtr(1), PlanetsID: uintPtr(3)}, true},
		{"all set", Favorite{PeopleID: uintPtr(1), VehiclesID: uintPtr(2), PlanetsID: uintPtr(3)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fav.BeforeCreate(nil)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrFavoriteTarget)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFavoriteCreateHookRunsThroughGorm(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:favorite_hook?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Favorite{}))

	err = db.Create(&Favorite{}).Error
	assert.ErrorIs(t, err, ErrFavoriteTarget)

	fav := Favorite{PeopleID: uintPtr(1)}
	require.NoError(t, db.Create(&fav).Error)
	assert.NotZero(t, fav.ID)
}

func TestFavoriteSerializeKeepsRawForeignKeys(t *testing.T) {
	fav := Favorite{PeopleID: uintPtr(7)}
	fav.ID = 12

	out := fav.Serialize()
	assert.Equal(t, uint(12), out["id"])
	assert.Equal(t, uintPtr(7), out["people_id"])
	assert.Nil(t, out["vehicles_id"])
	assert.Nil(t, out["planets_id"])
}
