// Package domain defines the core domain models for the SkillShare client.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. They mirror the JSON shapes served by the SkillShare
// REST backend. This package contains:
//
//   - User: the authenticated identity and public profile
//   - Resource: an entry in the shared resource library
//   - LearningPlan / Milestone: tracked learning plans
//   - Post: feed posts with likes, comments, and time commitments
//   - Notification: user notifications
//   - Errors: domain-specific error definitions
package domain
