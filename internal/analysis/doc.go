// Package analysis turns a food photo into a structured FoodAnalysis.
//
// Client.Analyze never fails: transport errors, timeouts, empty responses and
// malformed JSON all produce Fallback, and the cause is logged at Warn. The
// vendor call sits behind the Model interface; GeminiModel binds it to
// google.golang.org/genai.
package analysis
