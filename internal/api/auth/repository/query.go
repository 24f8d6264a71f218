package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, password, created_at)
VALUES (:id, :email, :name, :password, :created_at)`

	queryGetByID = `
SELECT id, email, name, password, profile_photo_url, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, password, profile_photo_url, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateUser = `
UPDATE users
SET name = :name,
    email = :email,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password,
    updated_at = :updated_at
WHERE email = :email`

	queryUpdateProfilePhoto = `
UPDATE users
SET profile_photo_url = :profile_photo_url,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
