// README: Classification labels and system prompts for intent routing.
package classify

// QueryType selects which workflow handles a request.
type QueryType string

const (
	QueryTypeDefault     QueryType = "default"
	QueryTypeTripPlanner QueryType = "trip-planner"
)

// Action selects the knowledge-base operation for default queries.
type Action string

const (
	ActionStore    Action = "store"
	ActionRetrieve Action = "retrieve"
)

const queryTypePrompt = `You are a query type classifier. Analyze the user's query and respond with ONLY one word:
- "trip-planner" if the query is asking for structured beauty tour schedule generation, travel planning, or itinerary creation
- "default" for all other queries (knowledge base questions, general information, storage requests)

Trip-planner indicators:
- Mentions "generate a detailed, structured beauty tour schedule"
- Asks for "schedule generation" or "beauty tour schedule"
- Requests travel itinerary, treatment planning, or structured trip data
- Contains destination, dates, themes, budget information for planning

Default query indicators:
- General questions about beauty treatments, procedures, or information
- Requests to store or retrieve information from knowledge base
- Conversational queries not related to structured planning

Respond with only "trip-planner" or "default".`

const actionPrompt = `You are a classifier that determines user intent. Analyze the user's query and respond with ONLY one word:
- "store" if the user wants to save, remember, or store information
- "retrieve" if the user is asking a question or wants to get information

Examples:
- "Remember that my birthday is July 25" -> store
- "What is my birthday?" -> retrieve
- "Save this information: I like pizza" -> store
- "Tell me about pizza" -> retrieve

Respond with only "store" or "retrieve".`
