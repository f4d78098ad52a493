package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// ==================== OTP ====================

const otpMax = 10000 // 4-digit codes, 0000-9999 inclusive

// GenerateOTP creates a zero-padded 4-digit numeric code from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax))
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// ==================== RESET TOKEN ====================

const resetTokenBytes = 32

// GenerateResetToken creates a hex-encoded high-entropy reset token.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken computes the SHA-256 digest stored in place of the plaintext
// token. Fast and deterministic on purpose; this is an equality lookup,
// not password storage.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ==================== RECEIPT ID ====================

// GenerateReceiptID creates a unique payment receipt reference.
func GenerateReceiptID() string {
	now := time.Now()

	// Format: NALAM-YYYYMMDD-HHMMSS-RANDOM
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}

	return fmt.Sprintf("NALAM-%s-%s-%04d", now.Format("20060102"), now.Format("150405"), suffix)
}
