// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

var (
	eventKey           string = "event"
	invocationIDKey    string = "invocationID"
	subscriberCountKey string = "subscriberCount"
)

// EventKey returns the contextual logging key for the name of the invoked handler
func EventKey() string {
	return eventKey
}

// InvocationIDKey returns the contextual logging key for the unique identifier of a single fan-out
func InvocationIDKey() string {
	return invocationIDKey
}

// SubscriberCountKey returns the contextual logging key for the number of subscribers started by a fan-out
func SubscriberCountKey() string {
	return subscriberCountKey
}
