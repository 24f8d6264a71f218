package authService

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"budgefy/internal/api/auth"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(c, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Email already registered")
		return auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserWithEmailNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	user := entity.User{
		ID:       id,
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User registered")

	return nil
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		return entity.User{}, err
	}

	if user.ProfilePhotoURL != "" {
		presigned, err := s.s3Client.PresignUrl(user.ProfilePhotoURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to presign profile photo URL")
		} else {
			user.ProfilePhotoURL = presigned
		}
	}

	return user, nil
}

func (s *userDomainImpl) UpdateUser(c context.Context, userData entity.UserLoginData, req auth.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	user, err := repo.Users.GetByID(c, userData.ID)
	if err != nil {
		return err
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := repo.Users.GetByEmail(c, req.Email)
		if err == nil && existing.ID != user.ID {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Email already in use by another user")
			return auth.ErrEmailAlreadyInUse
		} else if err != nil && !errors.Is(err, auth.ErrUserWithEmailNotFound) {
			return err
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if err := repo.Users.UpdateUser(c, user); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User profile updated")

	return nil
}

func (s *userDomainImpl) UpdateProfilePhoto(c context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile photo file")
		return nil, auth.ErrInvalidFileType
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Users.GetByID(c, userID); err != nil {
		return nil, err
	}

	photoURL, err := s.s3Client.UploadFile(photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return nil, auth.ErrFailedToUploadFile
	}

	if err := repo.Users.UpdateProfilePhoto(c, userID, photoURL); err != nil {
		return nil, err
	}

	return &auth.ProfilePhotoResponse{
		ID:              userID,
		ProfilePhotoURL: photoURL,
	}, nil
}

func (s *userDomainImpl) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByID(c, id); err != nil {
		return err
	}

	return repo.Users.DeleteUser(c, id)
}
