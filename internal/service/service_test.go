package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"marketplace-api/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword

	findUserByEmailOrUsername = store.FindUserByEmailOrUsername
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser

	createActivityLog = store.CreateActivityLog
	listRecentActivityLogs = store.ListRecentActivityLogs

	createFood = store.CreateFood
	getFoodByID = store.GetFoodByID
	listFoods = store.ListFoods
	updateFood = store.UpdateFood
	deleteFood = store.DeleteFood
	countFoods = store.CountFoods

	createRental = store.CreateRental
	getRentalByID = store.GetRentalByID
	listRentals = store.ListRentals
	updateRental = store.UpdateRental
	deleteRental = store.DeleteRental
	countRentals = store.CountRentals
	countAvailableRentals = store.CountAvailableRentals
}

// fakeAssets 記錄每次存圖與刪圖，並以 steps 追蹤呼叫順序
type fakeAssets struct {
	mu      sync.Mutex
	files   map[string][]byte
	removed []string
	steps   *[]string
	saveErr error
	rmErr   error
	n       int
}

func newFakeAssets(steps *[]string) *fakeAssets {
	return &fakeAssets{files: map[string][]byte{}, steps: steps}
}

func (f *fakeAssets) Save(_ context.Context, raw []byte, hint string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.n++
	name := fmt.Sprintf("%s-%d.jpg", hint, f.n)
	f.files[name] = raw
	f.record("save " + name)
	return name, nil
}

func (f *fakeAssets) Remove(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("remove " + name)
	if f.rmErr != nil {
		return f.rmErr
	}
	f.removed = append(f.removed, name)
	delete(f.files, name)
	return nil
}

func (f *fakeAssets) record(s string) {
	if f.steps != nil {
		*f.steps = append(*f.steps, s)
	}
}

func setup(t *testing.T) {
	t.Helper()
	t.Cleanup(restoreGlobals)
}
