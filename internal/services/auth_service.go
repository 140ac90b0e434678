package services

import (
	"errors"
	"strings"

	"cafe_manager/internal/models"
	"cafe_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(username, password string) (*models.Employee, error)
	Login(username, password string) (*models.Employee, error)
	ApprovedEmployees() ([]models.Employee, error)
	PendingEmployees() ([]models.Employee, error)
	Approve(id uint) (*models.Employee, error)
	Reject(id uint) (*models.Employee, error)
	Delete(id uint) (*models.Employee, error)
}

type authService struct {
	employeeRepo repository.EmployeeRepository
}

func NewAuthService(employeeRepo repository.EmployeeRepository) AuthService {
	return &authService{employeeRepo: employeeRepo}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a new unapproved employee account. The account cannot
// log in until an admin approves it.
func (s *authService) Register(username, password string) (*models.Employee, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	if _, err := s.employeeRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Username:     username,
		PasswordHash: hash,
		Role:         string(models.RoleEmployee),
		IsApproved:   false,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Login authenticates an employee. Credentials are checked before the
// approval flag, so an unapproved account with correct credentials gets
// the pending-approval message rather than a generic failure, but it is
// never let in.
func (s *authService) Login(username, password string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(password, employee.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !employee.IsApproved {
		return nil, ErrPendingApproval
	}
	return employee, nil
}

func (s *authService) ApprovedEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetByApproval(true)
}

func (s *authService) PendingEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetByApproval(false)
}

// Approve marks a pending account as approved. Approving an account that
// is already approved is a no-op.
func (s *authService) Approve(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if employee.IsApproved {
		return employee, nil
	}

	employee.IsApproved = true
	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Reject removes a pending account. Accounts that are already approved
// cannot be rejected; they go through Delete instead.
func (s *authService) Reject(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if employee.IsApproved {
		return nil, ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(employee.ID); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes an approved employee. Accounts with the admin role are
// protected and can never be deleted.
func (s *authService) Delete(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if employee.Role == string(models.RoleAdmin) {
		return nil, ErrAdminProtected
	}

	if err := s.employeeRepo.Delete(employee.ID); err != nil {
		return nil, err
	}
	return employee, nil
}
