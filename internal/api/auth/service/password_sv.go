package authService

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"budgefy/internal/api/auth"
	contextPkg "budgefy/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *passwordDomainImpl) ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(c, req.Email); err != nil {
		if errors.Is(err, auth.ErrUserWithEmailNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Forgot password requested for unknown email")
			return auth.ErrUserWithEmailNotFound
		}
		return err
	}

	verificationCode := fmt.Sprintf("%05d", 10000+rand.Intn(90000))
	if err := s.redisServer.SetOTP(c, req.Email, verificationCode, 5*time.Minute); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to set OTP in Redis")
		return err
	}

	if err := s.smtpMailer.SendPasswordResetOTP(req.Email, verificationCode); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send password reset email")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      req.Email,
	}).Info("Password reset OTP sent")

	return nil
}

func (s *passwordDomainImpl) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	storedOTP, err := s.redisServer.GetOTP(c, req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get OTP from Redis")
		return auth.ErrorTokenExpired
	}

	if storedOTP != req.Code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Invalid OTP",
		}).Warn("Invalid OTP provided")
		return auth.ErrInvalidOTP
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserWithEmailNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      "User not found",
			}).Warn("User not found")
			return auth.ErrUserNotFound
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "New password cannot be the same as the old password",
		}).Warn("New password is the same as the old password")
		return auth.ErrPasswordSame
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(c, req.Email, hashedPass); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, req.Email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete used OTP")
	}

	return nil
}
