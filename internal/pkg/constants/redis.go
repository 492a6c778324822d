package constants

// Redis key formats
const (
	KeyVerifyAttempts = "verify:attempts:%s" // Format: verify:attempts:{target}
	KeyResendCooldown = "verify:cooldown:%s" // Format: verify:cooldown:{target}
)
