package user

import (
	"context"
)

type StubUserRepo struct {
	nextId int
	data   map[int]User
	hashes map[int]string
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{
		nextId: 0,
		data:   map[int]User{},
		hashes: map[int]string{},
	}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User, passwordHash string) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[user.Id] = user
	s.hashes[user.Id] = passwordHash
	return user.Id, nil
}

func (s *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, u := range s.data {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetUserByEmail(ctx context.Context, email string) (User, string, error) {
	for id, u := range s.data {
		if u.Email == email {
			return u, s.hashes[id], nil
		}
	}
	return User{}, "", ErrUserNotFound
}

func (s *StubUserRepo) UpdateDisplayCurrency(ctx context.Context, userId int, currency Currency) (bool, error) {
	u, ok := s.data[userId]
	if !ok {
		return false, nil
	}
	u.DisplayCurrency = currency
	s.data[userId] = u
	return true, nil
}

func (s *StubUserRepo) Cleanup() {
	s.data = map[int]User{}
	s.hashes = map[int]string{}
}
