// Package service contains the application-specific use cases behind the
// three Gemini Studio panels. It orchestrates the prompt composer and the
// model gateway to fulfill each panel's feature:
//
//   - DashboardService turns a topic or an uploaded text file into a
//     validated DashboardSpec.
//   - AutomationService runs one agent task over free-form input.
//   - ChatService owns in-memory chat sessions, records every turn in order,
//     and converts gateway failures into an apology message.
//
// Services receive their dependencies through constructor injection and never
// talk to the model provider directly, so they can be tested with fakes.
package service
