package models

// EdgeType is the closed set of outbound AD relationship types CADRA
// reasons over. An edge type outside the set is still a valid graph edge —
// it simply has no permission rule and is skipped with a warning during
// permission assessment (see internal/permission).
type EdgeType string

const (
	EdgeADCSESC1                     EdgeType = "ADCSESC1"
	EdgeADCSESC3                     EdgeType = "ADCSESC3"
	EdgeADCSESC6a                    EdgeType = "ADCSESC6a"
	EdgeADCSESC9a                    EdgeType = "ADCSESC9a"
	EdgeADCSESC10a                   EdgeType = "ADCSESC10a"
	EdgeAddAllowedToAct              EdgeType = "AddAllowedToAct"
	EdgeAddKeyCredentialLink         EdgeType = "AddKeyCredentialLink"
	EdgeAddMember                    EdgeType = "AddMember"
	EdgeAddSelf                      EdgeType = "AddSelf"
	EdgeAllowedToAct                 EdgeType = "AllowedToAct"
	EdgeAllowedToDelegate            EdgeType = "AllowedToDelegate"
	EdgeAllExtendedRights            EdgeType = "AllExtendedRights"
	EdgeDCSync                       EdgeType = "DCSync"
	EdgeEnroll                       EdgeType = "Enroll"
	EdgeForceChangePassword          EdgeType = "ForceChangePassword"
	EdgeGenericAll                   EdgeType = "GenericAll"
	EdgeGenericWrite                 EdgeType = "GenericWrite"
	EdgeGetChanges                   EdgeType = "GetChanges"
	EdgeGetChangesAll                EdgeType = "GetChangesAll"
	EdgeGetChangesInFilteredSet      EdgeType = "GetChangesInFilteredSet"
	EdgeManageCA                     EdgeType = "ManageCA"
	EdgeManageCertificates           EdgeType = "ManageCertificates"
	EdgeMemberOf                     EdgeType = "MemberOf"
	EdgeOwns                         EdgeType = "Owns"
	EdgeReadGMSAPassword             EdgeType = "ReadGMSAPassword"
	EdgeReadLAPSPassword             EdgeType = "ReadLAPSPassword"
	EdgeSQLAdmin                     EdgeType = "SQLAdmin"
	EdgeSyncLAPSPassword             EdgeType = "SyncLAPSPassword"
	EdgeWriteAccountRestrictions     EdgeType = "WriteAccountRestrictions"
	EdgeWriteDacl                    EdgeType = "WriteDacl"
	EdgeWriteOwner                   EdgeType = "WriteOwner"
	EdgeWritePKIEnrollmentFlag       EdgeType = "WritePKIEnrollmentFlag"
	EdgeWritePKINameFlag             EdgeType = "WritePKINameFlag"
	EdgeWriteSPN                     EdgeType = "WriteSPN"
)

// KnownEdgeTypes is the closed vocabulary listed in spec §6.
var KnownEdgeTypes = map[EdgeType]struct{}{
	EdgeADCSESC1: {}, EdgeADCSESC3: {}, EdgeADCSESC6a: {}, EdgeADCSESC9a: {}, EdgeADCSESC10a: {},
	EdgeAddAllowedToAct: {}, EdgeAddKeyCredentialLink: {}, EdgeAddMember: {}, EdgeAddSelf: {},
	EdgeAllowedToAct: {}, EdgeAllowedToDelegate: {}, EdgeAllExtendedRights: {}, EdgeDCSync: {},
	EdgeEnroll: {}, EdgeForceChangePassword: {}, EdgeGenericAll: {}, EdgeGenericWrite: {},
	EdgeGetChanges: {}, EdgeGetChangesAll: {}, EdgeGetChangesInFilteredSet: {}, EdgeManageCA: {},
	EdgeManageCertificates: {}, EdgeMemberOf: {}, EdgeOwns: {}, EdgeReadGMSAPassword: {},
	EdgeReadLAPSPassword: {}, EdgeSQLAdmin: {}, EdgeSyncLAPSPassword: {},
	EdgeWriteAccountRestrictions: {}, EdgeWriteDacl: {}, EdgeWriteOwner: {},
	EdgeWritePKIEnrollmentFlag: {}, EdgeWritePKINameFlag: {}, EdgeWriteSPN: {},
}

// IsKnownEdgeType reports whether t is in the closed relationship-type
// vocabulary. Unknown types are still legal edges; they just never have a
// permission rule.
func IsKnownEdgeType(t EdgeType) bool {
	_, ok := KnownEdgeTypes[t]
	return ok
}

// Edge is a directed, typed relationship between two node ids.
type Edge struct {
	ID      string
	Type    EdgeType
	StartID string
	EndID   string
}
