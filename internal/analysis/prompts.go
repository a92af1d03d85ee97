package analysis

// System and user prompts for the three LLM calls. Every prompt demands a
// bare JSON object so responses parse without markdown stripping, though the
// parser tolerates fenced output anyway.

const weightsSystemPrompt = `You are a professional financial analyst with excellent personalization skills and a mathematically rigorous scoring engine.
STRICTLY OUTPUT ONLY A JSON OBJECT - no markdown, no explanations, no private reasoning tokens, nothing else.`

const weightsUserPrompt = `# DATA
Here is the user's personal data (JSON):
%s

## METRICS
- Savings-Income Ratio
- Investment-Income Ratio
- Expense-Income Ratio
- Debt-Income Ratio
- Emergency Fund Ratio
- Liquidity Ratio
- Asset-Liability Ratio
- Housing-Income Ratio
- Health Insurance Adequacy
- Term Insurance Adequacy
- Net Worth Adequacy
- Retirement Adequacy

# TASK
Assign each metric an integer "importance weight" of at least 3. Tailor weights by the user's life stage (age, dependents). Weights should sum to 100.

# RESPONSE
Return only a JSON object mapping metric names to integer weights, for example:

{
  "Savings-Income Ratio": 10,
  "Investment-Income Ratio": 8,
  "Retirement Adequacy": 15
}`

const profileReviewSystemPrompt = `You are a professional financial analyst. You will be provided with the financial data of an individual. Your job is to carefully analyze all the parameters and give your understanding of the profile in 6-7 lines. Return ONLY a JSON object with the key 'overall_profile_review', nothing else - no markdown, no explanation.`

const profileReviewUserPrompt = `# Personal Data
%s

# DERIVED FINANCIAL METRICS
%s

Step 1: Carefully analyze the user profile and understand the user's financial situation.
Step 2: Return your overall understanding as a JSON object with the only key 'overall_profile_review'. Raw values are provided; convert to lakhs and crores where suitable and avoid writing long numbers.

# Example output
{
    "overall_profile_review": "The user is a 35 year old with 2 dependents..."
}`

const summarySystemPrompt = `You are an excellent summarising agent. You will be provided with a user's financial profile, the commendable points about the profile and the areas for improvement. Summarise this information by choosing the most relevant points from all sections. The summary should sound optimistic - the given recommendations will help the user improve their financial situation. STRICTLY OUTPUT A JSON object with only one key - no markdown or additional explanation.`

const summaryUserPrompt = `# User profile
%s

# Commendable Points
%s

# Areas for improvement
%s

TASK:
Step 1: Understand which points are good and which need improvement. Do not mix them up; strictly adhere to the classification provided and assume the data is true and verified.
Step 2: Generate an optimistic summary of all the above in approximately 4-5 lines. Use the Indian naming convention of lakhs and crores wherever suitable and avoid long raw numbers. Return strictly a JSON object with the key 'summary'.

# Example
{
    "summary": "<generated summary>"
}`

// summaryFallbackText is attached when the summary call fails; the report
// still ships with generic guidance rather than an empty section.
const summaryFallbackText = "This summary provides a general overview based on standard financial best practices. Building consistent savings, managing expenses wisely, and investing with clear goals in mind are essential for financial health. Ensure adequate emergency funds and insurance coverage. Regularly review your financial plan to stay aligned with your long-term objectives."
