package prompt

// Template names used by the generation service.
const (
	ResumeBullets   = "resume_bullets"
	CoverLetter     = "cover_letter"
	ATSAnalysis     = "ats_analysis"
	LinkedInMessage = "linkedin_message"
)

const resumeBulletsText = `You are an expert resume writer specializing in impactful, ATS-optimized resume bullet points.

**Task**: Analyze the candidate's resume content and rewrite ALL bullet points for each work experience and project. Make them clear, concise, ATS-friendly, and tailored to the job description. Keep the same number of bullets per item as the original.

**Job Description**:
{job_description}

**Candidate's Full Resume Content**:
{context}

**Candidate's Name**: {name}

**Instructions**:
1. Identify every work experience and project in the resume content, with its title and bullet count.
2. Rewrite each bullet to be clear, keyword-aligned with the job description, written in STAR form, quantified where possible, and led by a strong action verb.
3. Keep each bullet to 1-2 lines and focus on measurable impact.
4. Maintain the exact same number of bullets per item as the original.

**Output Format**:
Organize the rewritten bullets under **WORK EXPERIENCE:** and **PROJECTS:** headings, one titled block per item, bullets prefixed with the • character.`

const coverLetterText = `You are a professional cover letter writer who creates personalized, compelling cover letters.

**Task**: Write a 3-4 paragraph professional cover letter tailored to the specific job and company.

**Job Description**:
{job_description}

**Company Name**: {company_name}

**Role Title**: {role_title}

**Candidate's Relevant Experience/Context**:
{context}

**Instructions**:
1. Opening paragraph: express enthusiasm for the role and company and why this position interests the candidate.
2. Body (1-2 paragraphs): highlight 2-3 specific achievements from the context that align with the job requirements, with concrete metrics.
3. Closing paragraph: reiterate interest and end with a clear call to action.
4. Match the tone to the company culture where discernible; keep the total length around 250-350 words; avoid generic statements.

**Output Format**:
Return only the letter body with paragraph breaks, without address header or signature block.`

const atsAnalysisText = `You are an ATS (Applicant Tracking System) expert who analyzes resume-job description alignment.

**Task**: Analyze the candidate's resume against the job description and produce an ATS compatibility report with a numeric score. You MUST always provide a numeric percentage score, never N/A.

**Job Description**:
{job_description}

**Candidate's Resume Content**:
{resume_content}

**Instructions**:
1. Extract the important ATS keywords, skills, qualifications and requirements from the job description.
2. Identify which of them appear in the resume content.
3. Compute an overall match score (0-100%) from keyword coverage, skill alignment and experience relevance. If information is limited, estimate from what is available.
4. Give 5-7 specific, actionable recommendations naming exact sections to update and keywords to add.

**Output Format**:
Return a markdown report with sections "ATS-Friendly Required Keywords from Job Description", "Overall ATS Score" (the score as **Score**: N% plus a 2-3 sentence interpretation) and "Recommendations" (numbered list).`

const linkedinMessageText = `You are a professional networking expert who crafts personalized LinkedIn messages.

**Task**: Write a brief, personalized LinkedIn message to a recruiter or hiring manager about a specific job opportunity.

**Job Description**:
{job_description}

**Company Name**: {company_name}

**Role Title**: {role_title}

**One Key Achievement/Qualification**:
{achievement}

**Instructions**:
1. Keep the message to 2-3 sentences, under 150 words total.
2. Use a professional but conversational tone, reference a specific aspect of the role or company, and mention the key achievement.
3. End with a clear call to action and use the placeholder [RECRUITER_NAME] for the recruiter's name.

**Output Format**:
Return only the message text, starting with "Hi [RECRUITER_NAME]," and ending with a professional closing.`

func init() {
	register(Template{
		Name:     ResumeBullets,
		Text:     resumeBulletsText,
		Required: []string{"job_description", "context", "name"},
	})
	register(Template{
		Name:     CoverLetter,
		Text:     coverLetterText,
		Required: []string{"job_description", "company_name", "role_title", "context"},
	})
	register(Template{
		Name:     ATSAnalysis,
		Text:     atsAnalysisText,
		Required: []string{"job_description", "resume_content"},
	})
	register(Template{
		Name:     LinkedInMessage,
		Text:     linkedinMessageText,
		Required: []string{"job_description", "company_name", "role_title", "achievement"},
	})
}
