package schema

import "github.com/datatrails-labs/ucf-core/digest"

// Version is the monotonic schema_version string shared by every type in
// this catalog; schema evolution would bump this per-type, not globally.
const Version = "1"

// SchemaDescriptor names a record's (domain, schema_id) pair, which
// together with Version is fed to digest.Compute (§4.2).
type SchemaDescriptor struct {
	SchemaID string
	Domain   digest.Domain
}

var (
	SchemaCanonicalIntent           = SchemaDescriptor{"ucf.v1.CanonicalIntent", digest.DomainCore}
	SchemaPolicyDecision            = SchemaDescriptor{"ucf.v1.PolicyDecision", digest.DomainCore}
	SchemaApprovalPackage           = SchemaDescriptor{"ucf.v1.ApprovalPackage", digest.DomainCore}
	SchemaSignalFrame                = SchemaDescriptor{"ucf.v1.SignalFrame", digest.DomainCore}
	SchemaControlFrame               = SchemaDescriptor{"ucf.v1.ControlFrame", digest.DomainCore}
	SchemaMilestone                  = SchemaDescriptor{"ucf.v1.Milestone", digest.DomainCore}
	SchemaReplayPlan                 = SchemaDescriptor{"ucf.v1.ReplayPlan", digest.DomainCore}
	SchemaRunEvidence                = SchemaDescriptor{"ucf.v1.RunEvidence", digest.DomainCore}
	SchemaSessionEventRecord         = SchemaDescriptor{"ucf.v1.SessionEventRecord", digest.DomainCore}
	SchemaToolRegistryProfile        = SchemaDescriptor{"ucf.v1.ToolRegistryProfile", digest.DomainCore}
	SchemaMicrocircuitConfigEvidence = SchemaDescriptor{"ucf.v1.MicrocircuitConfigEvidence", digest.DomainHashMicrocircuit}
	SchemaAssetManifest              = SchemaDescriptor{"ucf.v1.AssetManifest", digest.DomainAssetManifest}
	SchemaMorphologySetPayload        = SchemaDescriptor{"ucf.v1.MorphologySetPayload", digest.DomainAssetMorphology}
	SchemaChannelParamsSetPayload     = SchemaDescriptor{"ucf.v1.ChannelParamsSetPayload", digest.DomainAssetChannelParams}
	SchemaSynapseParamsSetPayload     = SchemaDescriptor{"ucf.v1.SynapseParamsSetPayload", digest.DomainAssetSynapseParams}
	SchemaConnectivityGraphPayload    = SchemaDescriptor{"ucf.v1.ConnectivityGraphPayload", digest.DomainAssetConnectivity}
	SchemaExperienceRecord            = SchemaDescriptor{"ucf.v1.ExperienceRecord", digest.DomainCore}
	SchemaProofReceipt                = SchemaDescriptor{"ucf.v1.ProofReceipt", digest.DomainCore}
	SchemaKeyEpoch                    = SchemaDescriptor{"ucf.v1.KeyEpoch", digest.DomainCore}
)
