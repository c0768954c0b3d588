package models

// UACFlag is a value drawn from the closed User-Account-Control flag
// vocabulary. Only a subset is ever derived (see internal/adschema), but
// the vocabulary itself is closed: a rule referencing a flag outside this
// set can never match.
type UACFlag string

const (
	UACScript                              UACFlag = "SCRIPT"
	UACAccountDisable                      UACFlag = "ACCOUNTDISABLE"
	UACHomedirRequired                     UACFlag = "HOMEDIR_REQUIRED"
	UACLockout                             UACFlag = "LOCKOUT"
	UACPasswdNotreqd                       UACFlag = "PASSWD_NOTREQD"
	UACPasswdCantChange                    UACFlag = "PASSWD_CANT_CHANGE"
	UACEncryptedTextPasswordAllowed        UACFlag = "ENCRYPTED_TEXT_PASSWORD_ALLOWED"
	UACTempDuplicateAccount                UACFlag = "TEMP_DUPLICATE_ACCOUNT"
	UACNormalAccount                       UACFlag = "NORMAL_ACCOUNT"
	UACInterdomainTrustAccount             UACFlag = "INTERDOMAIN_TRUST_ACCOUNT"
	UACWorkstationTrustAccount             UACFlag = "WORKSTATION_TRUST_ACCOUNT"
	UACServerTrustAccount                  UACFlag = "SERVER_TRUST_ACCOUNT"
	UACDontExpirePasswd                    UACFlag = "DONT_EXPIRE_PASSWD"
	UACMnsLogonAccount                     UACFlag = "MNS_LOGON_ACCOUNT"
	UACSmartcardRequired                   UACFlag = "SMARTCARD_REQUIRED"
	UACTrustedForDelegation                UACFlag = "TRUSTED_FOR_DELEGATION"
	UACNotDelegated                        UACFlag = "NOT_DELEGATED"
	UACUseDesKeyOnly                       UACFlag = "USE_DES_KEY_ONLY"
	UACDontRequirePreauth                  UACFlag = "DONT_REQUIRE_PREAUTH"
	UACPasswordExpired                     UACFlag = "PASSWORD_EXPIRED"
	UACTrustedToAuthForDelegation          UACFlag = "TRUSTED_TO_AUTHENTICATE_FOR_DELEGATION"
	UACPartialSecretsAccount               UACFlag = "PARTIAL_SECRETS_ACCOUNT"
)

// AllUACFlags is the closed UAC-flag vocabulary.
var AllUACFlags = map[UACFlag]struct{}{
	UACScript: {}, UACAccountDisable: {}, UACHomedirRequired: {}, UACLockout: {},
	UACPasswdNotreqd: {}, UACPasswdCantChange: {}, UACEncryptedTextPasswordAllowed: {},
	UACTempDuplicateAccount: {}, UACNormalAccount: {}, UACInterdomainTrustAccount: {},
	UACWorkstationTrustAccount: {}, UACServerTrustAccount: {}, UACDontExpirePasswd: {},
	UACMnsLogonAccount: {}, UACSmartcardRequired: {}, UACTrustedForDelegation: {},
	UACNotDelegated: {}, UACUseDesKeyOnly: {}, UACDontRequirePreauth: {},
	UACPasswordExpired: {}, UACTrustedToAuthForDelegation: {}, UACPartialSecretsAccount: {},
}

// IsKnownUACFlag reports whether name (already upper-cased) names a flag in
// the closed vocabulary.
func IsKnownUACFlag(name string) bool {
	_, ok := AllUACFlags[UACFlag(name)]
	return ok
}
