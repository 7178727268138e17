// Package convert maps database types to REST API response types.
package convert

import (
	"github.com/harborlight/harborlight/internal/database/types"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
)

// Blackout converts a blackout record to its partner-visible view.
func Blackout(record *types.BlackoutRecord) restTypes.BlackoutResponse {
	return restTypes.BlackoutResponse{
		SignalID:            record.SignalID,
		Status:              record.Status.String(),
		StartedAt:           record.StartedAt,
		ExpiresAt:           record.ExpiresAt,
		ExtensionCount:      len(record.Extensions),
		CumulativeExtension: record.CumulativeExtension().String(),
	}
}

// Escalation converts an escalation record to its admin-visible view.
func Escalation(escalation *types.SignalEscalation) restTypes.EscalationResponse {
	return restTypes.EscalationResponse{
		ID:             escalation.ID.String(),
		SignalID:       escalation.SignalID,
		PartnerID:      escalation.PartnerID,
		EscalationType: escalation.EscalationType.String(),
		Jurisdiction:   escalation.Jurisdiction,
		Sealed:         escalation.Sealed,
		CreatedAt:      escalation.CreatedAt,
	}
}

// Escalations converts a slice of escalation records.
func Escalations(escalations []*types.SignalEscalation) []restTypes.EscalationResponse {
	out := make([]restTypes.EscalationResponse, len(escalations))
	for i, escalation := range escalations {
		out[i] = Escalation(escalation)
	}

	return out
}

// Authorization converts an access authorization to the requester's view.
// Decider identities are deliberately omitted from API responses.
func Authorization(auth *types.SignalAccessAuthorization) restTypes.AuthorizationResponse {
	return restTypes.AuthorizationResponse{
		ID:          auth.ID.String(),
		SignalID:    auth.SignalID,
		Status:      auth.Status.String(),
		RequestedAt: auth.RequestedAt,
		ExpiresAt:   auth.ExpiresAt,
	}
}

// LegalRequest converts a legal request to its admin view.
func LegalRequest(request *types.LegalRequest) restTypes.LegalRequestResponse {
	return restTypes.LegalRequestResponse{
		ID:                request.ID.String(),
		RequestType:       request.RequestType.String(),
		RequestingAgency:  request.RequestingAgency,
		Jurisdiction:      request.Jurisdiction,
		DocumentReference: request.DocumentReference,
		SignalIDs:         request.SignalIDs,
		Status:            request.Status.String(),
		CreatedAt:         request.CreatedAt,
	}
}

// Flag converts a concern flag to its family-visible view. Callers must
// only pass flags that already cleared the visibility query; this function
// does not re-check suppression.
func Flag(flag *types.ConcernFlag) restTypes.FlagResponse {
	return restTypes.FlagResponse{
		ID:         flag.ID.String(),
		Category:   flag.Category,
		Severity:   flag.Severity.String(),
		Confidence: flag.Confidence,
		Reasoning:  flag.Reasoning,
		DetectedAt: flag.DetectedAt,
		Status:     flag.Status.String(),
	}
}

// Flags converts a slice of concern flags.
func Flags(flags []*types.ConcernFlag) []restTypes.FlagResponse {
	out := make([]restTypes.FlagResponse, len(flags))
	for i, flag := range flags {
		out[i] = Flag(flag)
	}

	return out
}

// Partner converts a crisis partner to its operator view. The key hash is
// dropped here.
func Partner(partner *types.CrisisPartner) restTypes.PartnerResponse {
	return restTypes.PartnerResponse{
		ID:            partner.ID,
		Name:          partner.Name,
		WebhookURL:    partner.WebhookURL,
		Active:        partner.Active,
		Jurisdictions: partner.Jurisdictions,
		Priority:      partner.Priority,
		Capabilities:  partner.Capabilities,
	}
}

// RoutingResult converts one routing attempt to its admin view.
func RoutingResult(result *types.SignalRoutingResult) restTypes.RoutingResultResponse {
	return restTypes.RoutingResultResponse{
		PartnerID:          result.PartnerID,
		Status:             result.Status.String(),
		Acknowledged:       result.Acknowledged,
		PartnerReferenceID: result.PartnerReferenceID,
		RetryCount:         result.RetryCount,
		LastError:          result.LastError,
		CreatedAt:          result.CreatedAt,
	}
}

// RoutingResults converts a slice of routing attempts.
func RoutingResults(results []*types.SignalRoutingResult) []restTypes.RoutingResultResponse {
	out := make([]restTypes.RoutingResultResponse, len(results))
	for i, result := range results {
		out[i] = RoutingResult(result)
	}

	return out
}

// ThrottleState converts a child's daily throttle state to its admin view.
func ThrottleState(state *types.FlagThrottleState) restTypes.ThrottleStateResponse {
	return restTypes.ThrottleStateResponse{
		ChildID:         state.ChildID,
		Day:             state.Day,
		AlertsSentToday: state.AlertsSentToday,
		ThrottledToday:  state.ThrottledToday,
	}
}

// SuppressionLog converts a suppression audit entry to its admin view.
func SuppressionLog(log *types.DistressSuppressionLog) restTypes.SuppressionLogResponse {
	return restTypes.SuppressionLogResponse{
		FlagID:       log.ScreenshotID,
		ChildID:      log.ChildID,
		Reason:       log.SuppressionReason.String(),
		SuppressedAt: log.Timestamp,
		Released:     log.Released,
	}
}

// SuppressionLogs converts a slice of suppression audit entries.
func SuppressionLogs(logs []*types.DistressSuppressionLog) []restTypes.SuppressionLogResponse {
	out := make([]restTypes.SuppressionLogResponse, len(logs))
	for i, log := range logs {
		out[i] = SuppressionLog(log)
	}

	return out
}
