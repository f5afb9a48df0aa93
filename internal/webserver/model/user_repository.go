package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/ruizdev/challenger/internal/result"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) List(page int, resultsPerPage int, filter string) (result.Paginated[[]User], error) {
	var users []User

	query := u.DB
	if filter != "" {
		query = query.Where("email LIKE ?", "%"+filter+"%")
	}

	res := query.Scopes(Paginate(page, resultsPerPage)).Order("email ASC").Find(&users)
	if res.Error != nil {
		log.Printf("error listing users: %s\n", res.Error)
		return result.Paginated[[]User]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(u.Total(filter)),
		users,
	), nil
}

func (u *UserRepository) Total(filter string) int64 {
	var (
		totalRows int64
		users     []User
	)

	query := u.DB.Model(&users)
	if filter != "" {
		query = query.Where("email LIKE ?", "%"+filter+"%")
	}
	query.Count(&totalRows)
	return totalRows
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", email)
}

func (u *UserRepository) FindByUuid(uuid string) (*User, error) {
	return u.find("uuid", uuid)
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		log.Printf("error creating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) Update(user *User) error {
	if result := u.DB.Save(user); result.Error != nil {
		log.Printf("error updating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) find(field, value string) (*User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
