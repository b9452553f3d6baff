package ai

// Prompts ask for strict JSON; the decode step still tolerates fences and
// surrounding prose.

const parsePrompt = `Extract resume data from the attached document into a single JSON object.
Use exactly these keys: personalInfo {fullName, email, phone, location, website, jobTitle, summary},
experience [{company, position, startDate, endDate, description, current}],
education [{school, degree, startDate, endDate, description}],
projects [{name, role, link, description, type}],
socialLinks [{platform, url}], skills [string], certifications [string], languages [string].
If a field is missing, use an empty string or empty array. Respond with ONLY the JSON object.`

const scorePrompt = `Analyze this resume for a "%s" role as an applicant tracking system would.
Respond with ONLY a JSON object: {score: 0-100, rating: string,
sections: {contact, experience, education, skills, format: {score, maxScore, label, status: "passed"|"warning"|"failed", feedback}},
forensicChecklist: [{category, status: "passed"|"warning"|"failed", feedback}],
keyImprovements: [string], companyContextFeedback: string}.`

const optimizePrompt = `Optimize this resume for ATS and impact. Rewrite the summary, the experience
descriptions and the skills list with stronger, keyword-rich wording. Keep every fact truthful and
keep all other fields unchanged. Respond with ONLY a JSON object in the same shape as the input.`
