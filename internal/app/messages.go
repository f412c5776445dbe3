// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// campus blog server handlers.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of successful HTTP responses.
package app

const (
	// MsgSignupTokenSent answers signup and resend requests.
	MsgSignupTokenSent = "Signup token sent to the email!"

	// MsgAccountCreated answers a successful signup confirmation.
	MsgAccountCreated = "Your account has been successfully created! Please login to continue"

	// MsgResetTokenSent answers a forgot password request.
	MsgResetTokenSent = "Password reset token sent to email!"

	// MsgPasswordChanged answers a completed password reset.
	MsgPasswordChanged = "Password changed successfully. Please login to continue"

	MsgBlogReviewed = "Blog reviewed"

	// MsgSomethingWentWrong replaces the text of unexpected server errors.
	MsgSomethingWentWrong = "Something went wrong"
)
